package chart

import (
	"fmt"

	"goplots/models"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

const qqSize = 500

// QQ renders sample quantiles against Normal theoretical quantiles with an
// identity reference line across their joint extent. q must have passed
// Validate.
func QQ(q *models.QQData, title string) Figure {
	meta := Meta{
		Kind:   KindQQ,
		Width:  qqSize,
		Height: qqSize,
		Title: []string{
			titleOr(title, "QQ Plot (Normal)"),
			fmt.Sprintf("μ̂=%s, σ̂=%s", sig(*q.MuHat, 5), sig(*q.SigmaHat, 5)),
		},
		XLabel: "Theoretical (Normal)",
		YLabel: "Sample",
		Points: len(q.SampleQuantiles),
	}

	// Both axes share one scale so the identity line stays diagonal.
	scale := scaleFor(q.SampleQuantiles, q.TheoreticalQuantiles)
	sample := scale.apply(q.SampleQuantiles)
	theoretical := scale.apply(q.TheoreticalQuantiles)
	lo := min(floats.Min(sample), floats.Min(theoretical))
	hi := max(floats.Max(sample), floats.Max(theoretical))

	points := gochart.ContinuousSeries{
		Name:    "quantiles",
		XValues: theoretical,
		YValues: sample,
		Style: gochart.Style{
			StrokeColor: gochart.ColorTransparent,
			DotColor:    gochart.ColorBlue,
			DotWidth:    3,
		},
	}
	reference := gochart.ContinuousSeries{
		Name:    "identity",
		XValues: []float64{lo, hi},
		YValues: []float64{lo, hi},
		Style:   gochart.Style{StrokeColor: gochart.ColorRed, StrokeWidth: 1.5},
	}

	graph := &gochart.Chart{
		XAxis: gochart.XAxis{
			Name:           meta.XLabel,
			Range:          spanRange(lo, hi),
			ValueFormatter: scale.formatter(),
			GridMajorStyle: gridStyle,
		},
		YAxis: gochart.YAxis{
			Name:           meta.YLabel,
			Range:          spanRange(lo, hi),
			ValueFormatter: scale.formatter(),
			GridMajorStyle: gridStyle,
		},
		Series: []gochart.Series{reference, points},
	}
	return newPlotFigure(meta, graph)
}
