package chart

import (
	"fmt"

	"goplots/domain/stats"
	"goplots/models"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Series renders values by 1-based position, with in-range outliers redrawn
// as larger red markers.
func Series(s *models.SeriesWithOutliers, title string) Figure {
	marked := s.Sanitize()
	meta := Meta{
		Kind:       KindSeries,
		Width:      plotWidth,
		Height:     plotHeight,
		Title:      []string{titleOr(title, "Series")},
		XLabel:     "index",
		YLabel:     "value",
		Points:     len(s.Values),
		Highlights: len(marked),
	}
	return newPlotFigure(meta, positionalChart(meta, s.Values, marked))
}

// Line renders a raw numeric series titled with its descriptive statistics.
// A non-empty title becomes an extra first line.
func Line(values []float64, desc stats.Description, title string) Figure {
	var lines []string
	if title != "" {
		lines = append(lines, title)
	}
	lines = append(lines, fmt.Sprintf("n=%d mean=%s median=%s sd=%s",
		desc.Count, fixed3(desc.Mean), fixed3(desc.Median), fixed3(desc.Std)))

	meta := Meta{
		Kind:   KindLine,
		Width:  plotWidth,
		Height: plotHeight,
		Title:  lines,
		XLabel: "index",
		YLabel: "value",
		Points: len(values),
	}
	return newPlotFigure(meta, positionalChart(meta, values, nil))
}

func positionalChart(meta Meta, values []float64, marked []int) *gochart.Chart {
	xs := indexAxis(len(values))
	yScale := scaleFor(values)
	values = yScale.apply(values)
	series := []gochart.Series{blankSeries{}}
	if len(values) > 0 {
		series = []gochart.Series{gochart.ContinuousSeries{
			Name:    "values",
			XValues: xs,
			YValues: values,
			Style: gochart.Style{
				StrokeColor: gochart.ColorBlue,
				StrokeWidth: 1.5,
				DotColor:    gochart.ColorBlue,
				DotWidth:    3,
			},
		}}
	}
	if len(marked) > 0 {
		ox := make([]float64, len(marked))
		oy := make([]float64, len(marked))
		for i, idx := range marked {
			ox[i] = xs[idx]
			oy[i] = values[idx]
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    "outliers",
			XValues: ox,
			YValues: oy,
			Style: gochart.Style{
				StrokeColor: gochart.ColorTransparent,
				DotColor:    gochart.ColorRed,
				DotWidth:    6,
			},
		})
	}

	return &gochart.Chart{
		XAxis: gochart.XAxis{
			Name:           meta.XLabel,
			Range:          paddedRange(xs),
			ValueFormatter: tickFormatter,
			GridMajorStyle: gridStyle,
		},
		YAxis: gochart.YAxis{
			Name:           meta.YLabel,
			Range:          paddedRange(values),
			ValueFormatter: yScale.formatter(),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
}
