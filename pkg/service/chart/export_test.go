package chart

import (
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarRects returns the canvas rectangles of every bar, current series first
func BarRects(req *model.ChartRequest, theme *model.ThemeConfig) ([]vg.Rectangle, error) {
	s, err := newStyle(theme)
	if err != nil {
		return nil, err
	}
	fig, err := newFigure(req, s)
	if err != nil {
		return nil, err
	}

	da := fig.plot.DataCanvas(draw.New(fig.canvas()))
	trX, trY := fig.plot.Transforms(&da)

	var rects []vg.Rectangle
	for _, b := range fig.series {
		for i, v := range b.values {
			x0, x1 := b.span(i)
			rects = append(rects, vg.Rectangle{
				Min: vg.Point{X: trX(x0), Y: trY(0)},
				Max: vg.Point{X: trX(x1), Y: trY(v)},
			})
		}
	}
	return rects, nil
}

// BarCenters returns the horizontal centre of every bar in data units, current series first
func BarCenters(req *model.ChartRequest, theme *model.ThemeConfig) ([]float64, error) {
	s, err := newStyle(theme)
	if err != nil {
		return nil, err
	}
	fig, err := newFigure(req, s)
	if err != nil {
		return nil, err
	}

	var centers []float64
	for _, b := range fig.series {
		for i := range b.values {
			centers = append(centers, b.center(i))
		}
	}
	return centers, nil
}

// LegendBox returns the canvas rectangle of the legend background
func LegendBox(req *model.ChartRequest, theme *model.ThemeConfig) (vg.Rectangle, error) {
	s, err := newStyle(theme)
	if err != nil {
		return vg.Rectangle{}, err
	}
	fig, err := newFigure(req, s)
	if err != nil {
		return vg.Rectangle{}, err
	}
	return fig.legendBox(fig.plot.DataCanvas(draw.New(fig.canvas()))), nil
}

// AnnotationAnchors returns the canvas point every bar annotation is anchored to, current series first
func AnnotationAnchors(req *model.ChartRequest, theme *model.ThemeConfig) ([]vg.Point, error) {
	s, err := newStyle(theme)
	if err != nil {
		return nil, err
	}
	fig, err := newFigure(req, s)
	if err != nil {
		return nil, err
	}
	labels, err := newAnnotations(fig.series, s)
	if err != nil {
		return nil, err
	}

	da := fig.plot.DataCanvas(draw.New(fig.canvas()))
	trX, trY := fig.plot.Transforms(&da)

	var anchors []vg.Point
	for _, xy := range labels.XYs {
		anchors = append(anchors, vg.Point{X: trX(xy.X), Y: trY(xy.Y)})
	}
	return anchors, nil
}
