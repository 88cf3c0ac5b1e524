package chart

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bars draws one series of a grouped bar chart. Unlike plotter.BarChart,
// widths and offsets are in data units so a group always spans the same
// fraction of a category regardless of the canvas size.
type bars struct {
	values []float64

	// offset is the left edge of each bar relative to its category position
	offset float64
	width  float64

	fill color.Color
	edge draw.LineStyle
}

var (
	_ plot.Plotter     = (*bars)(nil)
	_ plot.DataRanger  = (*bars)(nil)
	_ plot.Thumbnailer = (*bars)(nil)
)

// span returns the horizontal extent of the i-th bar in data units
func (b *bars) span(i int) (x0, x1 float64) {
	x0 = float64(i) + b.offset
	return x0, x0 + b.width
}

// center returns the horizontal centre of the i-th bar in data units
func (b *bars) center(i int) float64 {
	x0, x1 := b.span(i)
	return (x0 + x1) / 2
}

// Plot implements plot.Plotter
func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, v := range b.values {
		x0, x1 := b.span(i)
		rect := vg.Rectangle{
			Min: vg.Point{X: trX(x0), Y: trY(0)},
			Max: vg.Point{X: trX(x1), Y: trY(v)},
		}
		b.drawRect(&c, rect)
	}
}

// DataRange implements plot.DataRanger. The category axis keeps half a unit
// of margin on both sides and the value axis always includes zero.
func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = -0.5
	xmax = float64(len(b.values)) - 0.5
	if len(b.values) > 0 {
		ymin = min(0, floats.Min(b.values))
		ymax = max(0, floats.Max(b.values))
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer for the legend
func (b *bars) Thumbnail(c *draw.Canvas) {
	b.drawRect(c, c.Rectangle)
}

func (b *bars) drawRect(c *draw.Canvas, r vg.Rectangle) {
	pts := rectPoints(r)
	c.FillPolygon(b.fill, c.ClipPolygonY(pts))
	if b.edge.Width > 0 {
		c.StrokeLines(b.edge, c.ClipLinesY(append(pts, pts[0]))...)
	}
}

func rectPoints(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	}
}
