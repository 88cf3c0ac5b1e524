package chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	categoryAxisTitle = "LOB"
	valueAxisTitle    = "Quantity"

	// headroom is the fraction of the value range added above the tallest bar
	headroom = 0.05
)

var (
	legendInset   = vg.Points(8)
	legendPadding = vg.Points(4)
)

// Renderer draws grouped bar charts as PNG images.
// It holds no drawing state; every Render call builds its own plot and canvas,
// so a single Renderer can serve concurrent requests.
type Renderer struct{}

// New creates a new Renderer
func New() *Renderer {
	return &Renderer{}
}

// figure is the drawing context of one render call
type figure struct {
	plot   *plot.Plot
	legend plot.Legend
	series []*bars
	style  *style
}

// Render draws req with theme and encodes the result as PNG
func (r *Renderer) Render(ctx context.Context, req *model.ChartRequest, theme *model.ThemeConfig) (result *model.RenderedChart, err error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(model.ErrRenderCancelled, "context is done before drawing",
			goerr.V("cause", err.Error()))
	}
	if req == nil {
		return nil, goerr.Wrap(model.ErrRender, "chart request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrRender, "chart request cannot be drawn",
			goerr.V("cause", err.Error()),
			goerr.V("labels", len(req.Labels)))
	}

	s, err := newStyle(theme)
	if err != nil {
		return nil, goerr.Wrap(model.ErrRender, "invalid theme", goerr.V("cause", err.Error()))
	}

	// gonum/plot panics on some degenerate inputs; surface them as render errors
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = goerr.Wrap(model.ErrRender, "drawing pipeline panicked",
				goerr.V("panic", fmt.Sprint(rec)),
				goerr.V("labels", len(req.Labels)))
		}
	}()

	fig, err := newFigure(req, s)
	if err != nil {
		return nil, goerr.Wrap(model.ErrRender, "failed to lay out chart", goerr.V("cause", err.Error()))
	}

	data, err := fig.encode()
	if err != nil {
		return nil, goerr.Wrap(model.ErrRender, "failed to encode chart", goerr.V("cause", err.Error()))
	}

	return &model.RenderedChart{
		Data:     data,
		MIMEType: model.MIMETypePNG,
	}, nil
}

func newFigure(req *model.ChartRequest, s *style) (*figure, error) {
	p := plot.New()
	p.BackgroundColor = s.background

	p.X.Label.Text = categoryAxisTitle
	p.Y.Label.Text = valueAxisTitle
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Label.TextStyle.Color = s.text
		axis.Label.TextStyle.Font = s.titleFont
		axis.LineStyle.Color = s.text
		axis.Tick.LineStyle.Color = s.text
		axis.Tick.Label.Color = s.text
		axis.Tick.Label.Font = s.tickFont
	}

	p.X.Tick.Marker = categoryTicks(req.Labels, s.wrapWidth)
	if s.rotation != 0 {
		p.X.Tick.Label.Rotation = s.rotation
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal = s.grid
	p.Add(grid)

	half := s.barWidth
	series := []*bars{
		{values: req.Current, offset: -half, width: half, fill: s.current, edge: s.barEdge},
		{values: req.Previous, offset: 0, width: half, fill: s.previous, edge: s.barEdge},
	}
	for _, b := range series {
		p.Add(b)
	}

	annotations, err := newAnnotations(series, s)
	if err != nil {
		return nil, err
	}
	p.Add(annotations)

	if span := p.Y.Max - p.Y.Min; span > 0 {
		if p.Y.Max > 0 {
			p.Y.Max += span * headroom
		}
		if p.Y.Min < 0 {
			p.Y.Min -= span * headroom
		}
	} else {
		p.Y.Max = p.Y.Min + 1
	}

	legend := plot.NewLegend()
	legend.Top = true
	legend.TextStyle.Color = s.legendText
	legend.TextStyle.Font = s.tickFont
	legend.XOffs = -legendInset
	legend.YOffs = -legendInset
	legend.Add(types.SeriesCurrent.Title(), series[0])
	legend.Add(types.SeriesPrevious.Title(), series[1])

	return &figure{
		plot:   p,
		legend: legend,
		series: series,
		style:  s,
	}, nil
}

// canvas allocates the raster for this figure
func (f *figure) canvas() *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(f.style.width, f.style.height),
		vgimg.UseDPI(f.style.dpi),
		vgimg.UseBackgroundColor(f.style.background),
	)
}

// draw renders the plot and its legend onto c
func (f *figure) draw(c *vgimg.Canvas) {
	dc := draw.New(c)
	f.plot.Draw(dc)
	f.drawLegend(f.plot.DataCanvas(dc))
}

// drawLegend draws the legend box inside the data area. plot.Legend has no
// background of its own, so the box is filled and stroked first.
func (f *figure) drawLegend(dc draw.Canvas) {
	pts := rectPoints(f.legendBox(dc))
	dc.FillPolygon(f.style.legendBackground, pts)
	dc.StrokeLines(f.style.legendBorder, append(pts, pts[0]))
	f.legend.Draw(dc)
}

// legendBox returns the padded area covered by the legend entries on dc.
// Legend.Rectangle anchors to the opposite corner and ignores the offsets,
// so only its size is used; the position mirrors Legend.Draw for a
// top-right legend.
func (f *figure) legendBox(dc draw.Canvas) vg.Rectangle {
	r := f.legend.Rectangle(dc)
	w, h := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y

	right := dc.Max.X + f.legend.XOffs
	top := dc.Max.Y + f.legend.YOffs - f.legend.TextStyle.FontExtents().Descent
	return vg.Rectangle{
		Min: vg.Point{X: right - w - legendPadding, Y: top - h - legendPadding},
		Max: vg.Point{X: right + legendPadding, Y: top + legendPadding},
	}
}

func (f *figure) encode() ([]byte, error) {
	c := f.canvas()
	f.draw(c)

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to write PNG")
	}
	return buf.Bytes(), nil
}
