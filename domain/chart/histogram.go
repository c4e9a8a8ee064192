package chart

import (
	"fmt"
	"math"
	"strings"

	"goplots/models"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	plotWidth  = 600
	plotHeight = 400
)

var barColor = drawing.ColorFromHex("4c72b0")

// Histogram renders pre-binned counts as bars starting at each left edge.
func Histogram(d *models.DistributionHistogram, title string) Figure {
	xScale := scaleFor(d.Edges)
	edges := xScale.apply(d.Edges)
	bars := barSeries{
		lefts:   make([]float64, len(d.Counts)),
		widths:  make([]float64, len(d.Counts)),
		heights: make([]float64, len(d.Counts)),
	}
	top := 0.0
	for i, c := range d.Counts {
		bars.lefts[i] = edges[i]
		bars.widths[i] = edges[i+1] - edges[i]
		bars.heights[i] = float64(c)
		top = math.Max(top, float64(c))
	}

	meta := Meta{
		Kind:       KindHistogram,
		Width:      plotWidth,
		Height:     plotHeight,
		Title:      []string{titleOr(title, "Histogram")},
		XLabel:     "value",
		YLabel:     "count",
		Annotation: histogramNote(d),
		Points:     len(d.Counts),
	}

	yMax := top * (1 + rangePadFraction)
	if top == 0 {
		yMax = 1
	}
	graph := &gochart.Chart{
		XAxis: gochart.XAxis{
			Name:           meta.XLabel,
			Range:          paddedRange(edges),
			ValueFormatter: xScale.formatter(),
		},
		YAxis: gochart.YAxis{
			Name:           meta.YLabel,
			Range:          &gochart.ContinuousRange{Min: 0, Max: yMax},
			ValueFormatter: tickFormatter,
		},
		Series: []gochart.Series{bars},
	}
	return newPlotFigure(meta, graph)
}

// histogramNote joins the present shape statistics and the 5/50/95%
// quantiles with two spaces.
func histogramNote(d *models.DistributionHistogram) string {
	var parts []string
	if d.Skewness != nil {
		parts = append(parts, "skew="+sig(*d.Skewness, 3))
	}
	if d.ExcessKurtosis != nil {
		parts = append(parts, "kurt(excess)="+sig(*d.ExcessKurtosis, 3))
	}
	if d.EntropyBits != nil {
		parts = append(parts, "H="+sig(*d.EntropyBits, 3)+" bits")
	}

	var qs []string
	for _, q := range d.Quantiles {
		if q.P == 0.05 || q.P == 0.5 || q.P == 0.95 {
			qs = append(qs, fmt.Sprintf("Q%d=%s", int(math.Round(q.P*100)), sig(q.Value, 5)))
		}
	}
	if len(qs) > 0 {
		parts = append(parts, strings.Join(qs, ", "))
	}
	return strings.Join(parts, "  ")
}

// barSeries draws filled rectangles from y=0, one per bin.
type barSeries struct {
	lefts, widths, heights []float64
}

func (b barSeries) GetName() string { return "counts" }

func (b barSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }

func (b barSeries) GetStyle() gochart.Style {
	return gochart.Style{FillColor: barColor, StrokeColor: gochart.ColorBlack}
}

func (b barSeries) Validate() error {
	if len(b.lefts) != len(b.widths) || len(b.lefts) != len(b.heights) {
		return fmt.Errorf("bar series: %d lefts, %d widths, %d heights", len(b.lefts), len(b.widths), len(b.heights))
	}
	return nil
}

func (b barSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	base := canvasBox.Bottom - yrange.Translate(0)
	for i, h := range b.heights {
		x0 := canvasBox.Left + xrange.Translate(b.lefts[i])
		x1 := canvasBox.Left + xrange.Translate(b.lefts[i]+b.widths[i])
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		y := canvasBox.Bottom - yrange.Translate(h)
		fillRect(r, gochart.Box{Top: y, Left: x0, Right: x1, Bottom: base}, barColor, gochart.ColorBlack)
	}
}
