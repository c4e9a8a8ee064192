package chart

import (
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
)

const (
	titleFontSize    = 12.0
	titleTop         = 8
	titleLineHeight  = 18
	defaultPadLeft   = 16
	defaultPadRight  = 24
	defaultPadBottom = 12
	notePad          = 6
	noteFontSize     = 9.0

	panelFontSize   = 11.0
	panelLineHeight = 22
	panelLeft       = 24

	rangePadFraction = 0.05
	degenerateHalf   = 0.5

	// Axes holding a value beyond hugeMagnitude are drawn at hugeScale so
	// that the span of the axis stays finite.
	hugeMagnitude = 0x1p1000
	hugeScale     = 0x1p-24
)

var gridStyle = gochart.Style{
	StrokeColor: gochart.ColorAlternateGray,
	StrokeWidth: 0.5,
}

// titleHeight is the vertical space taken by a title block of n lines.
func titleHeight(n int) int {
	if n == 0 {
		return titleTop * 2
	}
	return titleTop*2 + n*titleLineHeight
}

// titleBlock draws each line centred across the full figure width, top down.
func titleBlock(width int, lines []string) gochart.Renderable {
	return func(r gochart.Renderer, _ gochart.Box, defaults gochart.Style) {
		if len(lines) == 0 {
			return
		}
		r.SetFont(defaults.Font)
		r.SetFontColor(gochart.ColorBlack)
		r.SetFontSize(titleFontSize)
		y := titleTop
		for _, line := range lines {
			y += titleLineHeight
			tb := r.MeasureText(line)
			r.Text(line, (width-tb.Width())/2, y-notePad/2)
		}
	}
}

// cornerNote writes a small note in the lower-right corner of the plot area.
func cornerNote(text string) gochart.Renderable {
	return func(r gochart.Renderer, canvasBox gochart.Box, defaults gochart.Style) {
		r.SetFont(defaults.Font)
		r.SetFontColor(gochart.ColorBlack)
		r.SetFontSize(noteFontSize)
		tb := r.MeasureText(text)
		r.Text(text, canvasBox.Right-tb.Width()-notePad, canvasBox.Bottom-notePad)
	}
}

// paddedRange spans values with a 5% margin each side. A single distinct
// value is widened by ±0.5; no values at all give [0, 1].
func paddedRange(values ...[]float64) *gochart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return spanRange(lo, hi)
}

func spanRange(lo, hi float64) *gochart.ContinuousRange {
	switch {
	case math.IsInf(lo, 1):
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	case lo == hi:
		half := degenerateHalf
		if lo-half == lo {
			half = math.Abs(lo) * rangePadFraction
		}
		return &gochart.ContinuousRange{Min: lo - half, Max: hi + half}
	}
	pad := hi*rangePadFraction - lo*rangePadFraction
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// axisScale is the factor data is multiplied by before it is placed on an
// axis. Tick labels divide it back out.
type axisScale float64

const unitScale axisScale = 1

// scaleFor picks hugeScale when any finite value is too large for the span
// of its axis to be represented, and unitScale otherwise.
func scaleFor(values ...[]float64) axisScale {
	for _, vs := range values {
		for _, v := range vs {
			if !math.IsInf(v, 0) && math.Abs(v) > hugeMagnitude {
				return hugeScale
			}
		}
	}
	return unitScale
}

// apply returns vs multiplied by s. vs itself is returned at unit scale.
func (s axisScale) apply(vs []float64) []float64 {
	if s == unitScale {
		return vs
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v * float64(s)
	}
	return out
}

// formatter labels ticks in data units.
func (s axisScale) formatter() gochart.ValueFormatter {
	if s == unitScale {
		return tickFormatter
	}
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return sig(f/float64(s), 4)
		}
		return ""
	}
}

// tickFormatter prints axis values with up to four significant figures.
func tickFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return sig(f, 4)
	}
	return ""
}

// blankSeries keeps go-chart's one-series minimum satisfied when a payload
// has nothing to plot.
type blankSeries struct{}

func (blankSeries) GetName() string { return "" }
func (blankSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }
func (blankSeries) GetStyle() gochart.Style { return gochart.Style{} }
func (blankSeries) Validate() error { return nil }
func (blankSeries) Render(gochart.Renderer, gochart.Box, gochart.Range, gochart.Range, gochart.Style) {
}

// indexAxis returns 1..n as float64, the x values of a series plot.
func indexAxis(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}
