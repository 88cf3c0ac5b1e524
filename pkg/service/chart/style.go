package chart

import (
	"image/color"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	fontTypeface font.Typeface = "Liberation"
	fontVariant  font.Variant  = "Sans"
)

// style is a ThemeConfig resolved into drawing primitives for one render call
type style struct {
	background color.Color
	current    color.Color
	previous   color.Color
	barEdge    draw.LineStyle
	text       color.Color
	grid       draw.LineStyle

	legendBackground color.Color
	legendBorder     draw.LineStyle
	legendText       color.Color

	wrapWidth int
	rotation  float64 // radians

	titleFont      font.Font
	tickFont       font.Font
	annotationFont font.Font

	width  vg.Length
	height vg.Length
	dpi    int

	barWidth float64
}

func newStyle(theme *model.ThemeConfig) (*style, error) {
	if theme == nil {
		return nil, goerr.Wrap(model.ErrInvalidTheme, "theme is required")
	}
	if err := theme.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidTheme, "theme cannot be rendered",
			goerr.V("cause", err.Error()))
	}

	// Validate guarantees every colour parses
	parse := func(s string) color.NRGBA {
		c, _ := model.ParseColor(s)
		return c
	}

	titleFont := font.Font{
		Typeface: fontTypeface,
		Variant:  fontVariant,
		Size:     vg.Points(theme.TitleFontSize),
	}
	if theme.TitleBold {
		titleFont.Weight = xfont.WeightBold
	}

	s := &style{
		background: parse(theme.Background),
		current:    parse(theme.CurrentColor),
		previous:   parse(theme.PreviousColor),
		barEdge: draw.LineStyle{
			Color: parse(theme.BarEdgeColor),
			Width: vg.Points(theme.BarEdgeWidth),
		},
		text: parse(theme.TextColor),
		grid: draw.LineStyle{
			Color:  model.WithAlpha(parse(theme.GridColor), theme.GridAlpha),
			Width:  vg.Points(0.8),
			Dashes: []vg.Length{vg.Points(3.7), vg.Points(1.6)},
		},
		legendBackground: parse(theme.LegendBackground),
		legendBorder: draw.LineStyle{
			Color: parse(theme.LegendBorder),
			Width: vg.Points(0.8),
		},
		legendText: parse(theme.LegendText),

		wrapWidth: theme.WrapWidth,
		rotation:  theme.LabelRotation * math.Pi / 180,

		titleFont:      titleFont,
		tickFont:       font.Font{Typeface: fontTypeface, Variant: fontVariant, Size: vg.Points(theme.TickFontSize)},
		annotationFont: font.Font{Typeface: fontTypeface, Variant: fontVariant, Size: vg.Points(theme.AnnotationFontSize)},

		width:  vg.Length(theme.Width) * vg.Inch,
		height: vg.Length(theme.Height) * vg.Inch,
		dpi:    theme.DPI,

		barWidth: theme.BarWidth,
	}
	if theme.Wraps() {
		s.rotation = 0
	}

	return s, nil
}
