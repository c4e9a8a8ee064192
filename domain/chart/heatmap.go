package chart

import (
	"math"
	"strconv"

	"goplots/models"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/mat"
)

const (
	heatmapWidth    = 550
	heatmapHeight   = 480
	heatmapPadRight = 96
	legendBands     = 64
	legendWidth     = 14
	legendInset     = 20
)

// Heatmap renders an n×n correlation matrix, row 0 at the top, coloured on a
// fixed [-1, 1] viridis scale.
func Heatmap(c *models.CorrelationMatrix, title string) Figure {
	n := c.N()
	labels := c.Labels()
	meta := Meta{
		Kind:   KindHeatmap,
		Width:  heatmapWidth,
		Height: heatmapHeight,
		Title:  []string{titleOr(title, "Correlation heatmap")},
		Points: n * n,
	}

	var series gochart.Series = blankSeries{}
	if n > 0 {
		series = cellSeries{m: mat.NewDense(n, n, append([]float64(nil), c.Matrix...))}
	}

	graph := &gochart.Chart{
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(float64(n), 1)},
			Ticks: cellTicks(labels, false),
			Style: gochart.Style{
				TextRotationDegrees: 45,
			},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: math.Max(float64(n), 1)},
			Ticks: cellTicks(labels, true),
		},
		Series:   []gochart.Series{series},
		Elements: []gochart.Renderable{colorLegend},
	}
	fig := newPlotFigure(meta, graph)
	fig.padRight = heatmapPadRight
	return fig
}

// cellTicks centres one labelled tick on each cell. Unlabelled ticks at the
// edges pin the axis to [0, n], since go-chart derives the range from ticks.
func cellTicks(labels []string, inverted bool) []gochart.Tick {
	n := len(labels)
	ticks := make([]gochart.Tick, 0, n+2)
	ticks = append(ticks, gochart.Tick{Value: 0})
	for i, label := range labels {
		v := float64(i) + 0.5
		if inverted {
			v = float64(n-i) - 0.5
		}
		ticks = append(ticks, gochart.Tick{Value: v, Label: label})
	}
	return append(ticks, gochart.Tick{Value: math.Max(float64(n), 1)})
}

// correlationColor maps a coefficient onto viridis over [-1, 1].
func correlationColor(v float64) gochart.Style {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(-1, math.Min(1, v))
	col := gochart.Viridis(v, -1, 1)
	return gochart.Style{FillColor: col, StrokeColor: col}
}

// cellSeries fills one unit square per matrix entry.
type cellSeries struct {
	m *mat.Dense
}

func (cellSeries) GetName() string { return "correlation" }

func (cellSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }

func (cellSeries) GetStyle() gochart.Style { return gochart.Style{} }

func (cellSeries) Validate() error { return nil }

func (s cellSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	rows, cols := s.m.Dims()
	for i := 0; i < rows; i++ {
		top := canvasBox.Bottom - yrange.Translate(float64(rows-i))
		bottom := canvasBox.Bottom - yrange.Translate(float64(rows-i-1))
		for j := 0; j < cols; j++ {
			left := canvasBox.Left + xrange.Translate(float64(j))
			right := canvasBox.Left + xrange.Translate(float64(j+1))
			st := correlationColor(s.m.At(i, j))
			fillRect(r, gochart.Box{Top: top, Left: left, Right: right, Bottom: bottom}, st.FillColor, st.StrokeColor)
		}
	}
}

// colorLegend draws a vertical colour bar in the right margin with labels at
// -1, 0 and 1.
func colorLegend(r gochart.Renderer, canvasBox gochart.Box, defaults gochart.Style) {
	left := heatmapWidth - heatmapPadRight + legendInset
	right := left + legendWidth
	height := float64(canvasBox.Bottom - canvasBox.Top)

	for b := 0; b < legendBands; b++ {
		v := 1 - 2*(float64(b)+0.5)/legendBands
		top := canvasBox.Top + int(math.Floor(height*float64(b)/legendBands))
		bottom := canvasBox.Top + int(math.Ceil(height*float64(b+1)/legendBands))
		st := correlationColor(v)
		fillRect(r, gochart.Box{Top: top, Left: left, Right: right, Bottom: bottom}, st.FillColor, st.StrokeColor)
	}

	r.SetFont(defaults.Font)
	r.SetFontColor(gochart.ColorBlack)
	r.SetFontSize(noteFontSize)
	for _, v := range []float64{1, 0, -1} {
		y := canvasBox.Top + int(height*(1-v)/2)
		label := strconv.FormatFloat(v, 'f', -1, 64)
		tb := r.MeasureText(label)
		r.Text(label, right+4, y+tb.Height()/2)
	}
}
