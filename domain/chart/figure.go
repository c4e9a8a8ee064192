// Package chart renders validated payloads into PNG figures.
//
// Every renderer is a pure function returning a fresh Figure. A Figure owns
// its drawing state until Close is called; EncodePNG is the only place that
// drives Layout, Render and Close, in that order.
package chart

import (
	stderrors "errors"
	"io"
	"sync"

	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrFigureClosed is returned when a released figure is rendered again.
var ErrFigureClosed = stderrors.New("figure already closed")

// loadFont parses the embedded default font once per process.
var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return gochart.GetDefaultFont()
})

// Kinds of figure produced by this package.
const (
	KindSummary   = "summary"
	KindHistogram = "histogram"
	KindECDF      = "ecdf"
	KindQQ        = "qq"
	KindHeatmap   = "corr-heatmap"
	KindSeries    = "series"
	KindLine      = "line"
)

// Meta is the structural description of a figure: everything a layout or a
// test needs to know without decoding pixels.
type Meta struct {
	Kind       string
	Width      int
	Height     int
	Title      []string
	XLabel     string
	YLabel     string
	Lines      []string // text panel body
	Annotation string   // lower-right note inside the plot area
	Points     int      // data points drawn by the primary layer
	Highlights int      // emphasised points
}

// Figure is a drawable chart. Callers must Close it once done.
type Figure interface {
	Meta() Meta
	Layout()
	Render(w io.Writer) error
	Close() error
}

// plotFigure wraps a go-chart Chart with axes.
type plotFigure struct {
	meta     Meta
	graph    *gochart.Chart
	padRight int
	closed   bool
}

func newPlotFigure(meta Meta, graph *gochart.Chart) *plotFigure {
	graph.Width = meta.Width
	graph.Height = meta.Height
	graph.Elements = append(graph.Elements, titleBlock(meta.Width, meta.Title))
	if meta.Annotation != "" {
		graph.Elements = append(graph.Elements, cornerNote(meta.Annotation))
	}
	return &plotFigure{meta: meta, graph: graph, padRight: defaultPadRight}
}

func (f *plotFigure) Meta() Meta { return f.meta }

// Layout reserves room for the title block; go-chart then fits the canvas
// to the axis labels inside the remaining box.
func (f *plotFigure) Layout() {
	if f.graph == nil {
		return
	}
	f.graph.Background = gochart.Style{
		FillColor: gochart.ColorWhite,
		Padding: gochart.Box{
			Top:    titleHeight(len(f.meta.Title)),
			Left:   defaultPadLeft,
			Right:  f.padRight,
			Bottom: defaultPadBottom,
		},
	}
}

func (f *plotFigure) Render(w io.Writer) error {
	if f.closed || f.graph == nil {
		return ErrFigureClosed
	}
	font, err := loadFont()
	if err != nil {
		return err
	}
	f.graph.Font = font
	return f.graph.Render(gochart.PNG, w)
}

func (f *plotFigure) Close() error {
	f.closed = true
	f.graph = nil
	return nil
}

// textFigure is an axis-free panel drawn straight onto a PNG renderer.
type textFigure struct {
	meta   Meta
	top    int
	closed bool
}

func (f *textFigure) Meta() Meta { return f.meta }

func (f *textFigure) Layout() {
	f.top = titleHeight(len(f.meta.Title)) + panelLineHeight
}

func (f *textFigure) Render(w io.Writer) error {
	if f.closed {
		return ErrFigureClosed
	}
	r, err := gochart.PNG(f.meta.Width, f.meta.Height)
	if err != nil {
		return err
	}
	font, err := loadFont()
	if err != nil {
		return err
	}

	fillRect(r, gochart.Box{Top: 0, Left: 0, Right: f.meta.Width, Bottom: f.meta.Height}, gochart.ColorWhite, gochart.ColorWhite)
	titleBlock(f.meta.Width, f.meta.Title)(r, gochart.Box{}, gochart.Style{Font: font})

	r.SetFont(font)
	r.SetFontColor(gochart.ColorBlack)
	r.SetFontSize(panelFontSize)
	y := f.top
	for _, line := range f.meta.Lines {
		r.Text(line, panelLeft, y)
		y += panelLineHeight
	}
	return r.Save(w)
}

func (f *textFigure) Close() error {
	f.closed = true
	return nil
}

// fillRect paints a rectangle given in pixel coordinates.
func fillRect(r gochart.Renderer, b gochart.Box, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
	r.FillStroke()
}
