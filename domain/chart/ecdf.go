package chart

import (
	"goplots/models"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// ECDF renders a right-continuous step function through (xs[i], ps[i]).
func ECDF(e *models.EmpiricalCDF, title string) Figure {
	meta := Meta{
		Kind:   KindECDF,
		Width:  plotWidth,
		Height: plotHeight,
		Title:  []string{titleOr(title, "ECDF")},
		XLabel: "value",
		YLabel: "F(x)",
		Points: len(e.Xs),
	}

	xScale := scaleFor(e.Xs)
	scaled := xScale.apply(e.Xs)

	var series gochart.Series = blankSeries{}
	if len(scaled) > 0 {
		xs, ys := stepPost(scaled, e.Ps)
		series = gochart.ContinuousSeries{
			Name:    "ecdf",
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: gochart.ColorBlue, StrokeWidth: 2},
		}
	}

	graph := &gochart.Chart{
		XAxis: gochart.XAxis{
			Name:           meta.XLabel,
			Range:          paddedRange(scaled),
			ValueFormatter: xScale.formatter(),
			GridMajorStyle: gridStyle,
		},
		YAxis: gochart.YAxis{
			Name:           meta.YLabel,
			Range:          &gochart.ContinuousRange{Min: 0, Max: 1},
			ValueFormatter: tickFormatter,
			GridMajorStyle: gridStyle,
		},
		Series: []gochart.Series{series},
	}
	return newPlotFigure(meta, graph)
}

// stepPost expands points into a post-step polyline: each level holds until
// the next x, where the line jumps vertically.
func stepPost(xs, ps []float64) ([]float64, []float64) {
	outX := make([]float64, 0, 2*len(xs))
	outY := make([]float64, 0, 2*len(xs))
	for i := range xs {
		if i > 0 {
			outX = append(outX, xs[i])
			outY = append(outY, ps[i-1])
		}
		outX = append(outX, xs[i])
		outY = append(outY, ps[i])
	}
	return outX, outY
}
