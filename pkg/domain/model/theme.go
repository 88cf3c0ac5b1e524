package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// ThemeConfig is a named bundle of colours, fonts and sizing applied to one chart.
// Colours are "#rrggbb", "#rrggbbaa" or CSS names (see ParseColor).
type ThemeConfig struct {
	Background    string  `yaml:"background"`
	CurrentColor  string  `yaml:"current_color"`
	PreviousColor string  `yaml:"previous_color"`
	BarEdgeColor  string  `yaml:"bar_edge_color"`
	BarEdgeWidth  float64 `yaml:"bar_edge_width"` // points
	TextColor     string  `yaml:"text_color"`

	GridColor string  `yaml:"grid_color"`
	GridAlpha float64 `yaml:"grid_alpha"`

	LegendBackground string `yaml:"legend_background"`
	LegendBorder     string `yaml:"legend_border"`
	LegendText       string `yaml:"legend_text"`

	// WrapWidth is the number of characters per label line. 0 disables wrapping.
	WrapWidth int `yaml:"wrap_width"`

	// LabelRotation is applied to unwrapped labels, in degrees
	LabelRotation float64 `yaml:"label_rotation"`

	TitleFontSize      float64 `yaml:"title_font_size"` // points
	TitleBold          bool    `yaml:"title_bold"`
	TickFontSize       float64 `yaml:"tick_font_size"`
	AnnotationFontSize float64 `yaml:"annotation_font_size"`

	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
	DPI    int     `yaml:"dpi"`

	// BarWidth is the width of one bar in category units
	BarWidth float64 `yaml:"bar_width"`
}

// Validate validates the theme configuration
func (t *ThemeConfig) Validate() error {
	colors := []struct {
		field string
		value string
	}{
		{"background", t.Background},
		{"current_color", t.CurrentColor},
		{"previous_color", t.PreviousColor},
		{"bar_edge_color", t.BarEdgeColor},
		{"text_color", t.TextColor},
		{"grid_color", t.GridColor},
		{"legend_background", t.LegendBackground},
		{"legend_border", t.LegendBorder},
		{"legend_text", t.LegendText},
	}
	for _, c := range colors {
		if _, err := ParseColor(c.value); err != nil {
			return goerr.Wrap(err, "invalid colour", goerr.V("field", c.field))
		}
	}

	current, _ := ParseColor(t.CurrentColor)
	previous, _ := ParseColor(t.PreviousColor)
	if current == previous {
		return goerr.New("current and previous colours must differ",
			goerr.V("color", t.CurrentColor))
	}

	if t.GridAlpha < 0 || t.GridAlpha > 1 {
		return goerr.New("grid alpha must be between 0 and 1", goerr.V("grid_alpha", t.GridAlpha))
	}
	if t.BarEdgeWidth < 0 {
		return goerr.New("bar edge width must not be negative", goerr.V("bar_edge_width", t.BarEdgeWidth))
	}
	if t.WrapWidth < 0 {
		return goerr.New("wrap width must not be negative", goerr.V("wrap_width", t.WrapWidth))
	}
	if t.TitleFontSize <= 0 || t.TickFontSize <= 0 || t.AnnotationFontSize <= 0 {
		return goerr.New("font sizes must be positive",
			goerr.V("title_font_size", t.TitleFontSize),
			goerr.V("tick_font_size", t.TickFontSize),
			goerr.V("annotation_font_size", t.AnnotationFontSize))
	}
	if t.Width <= 0 || t.Height <= 0 || t.DPI <= 0 {
		return goerr.New("figure dimensions must be positive",
			goerr.V("width", t.Width),
			goerr.V("height", t.Height),
			goerr.V("dpi", t.DPI))
	}
	if t.Width*float64(t.DPI) > 8000 || t.Height*float64(t.DPI) > 8000 {
		return goerr.New("figure is too large",
			goerr.V("width", t.Width),
			goerr.V("height", t.Height),
			goerr.V("dpi", t.DPI))
	}
	if t.BarWidth <= 0 || t.BarWidth > 0.5 {
		return goerr.New("bar width must be in (0, 0.5]", goerr.V("bar_width", t.BarWidth))
	}

	return nil
}

// Wraps returns true if category labels are reflowed instead of rotated
func (t *ThemeConfig) Wraps() bool {
	return t.WrapWidth > 0
}

// OffWhiteTheme returns the default preset: off-white background, rotated labels
func OffWhiteTheme() ThemeConfig {
	return ThemeConfig{
		Background:         "#f4f4f4",
		CurrentColor:       "skyblue",
		PreviousColor:      "orange",
		BarEdgeColor:       "white",
		BarEdgeWidth:       1,
		TextColor:          "black",
		GridColor:          "gray",
		GridAlpha:          0.6,
		LegendBackground:   "#f4f4f4",
		LegendBorder:       "gray",
		LegendText:         "black",
		LabelRotation:      45,
		TitleFontSize:      10,
		TickFontSize:       10,
		AnnotationFontSize: 9,
		Width:              10,
		Height:             5,
		DPI:                100,
		BarWidth:           0.35,
	}
}

// DarkTheme returns the black-background preset
func DarkTheme() ThemeConfig {
	t := OffWhiteTheme()
	t.Background = "black"
	t.TextColor = "white"
	t.GridColor = "gray"
	t.GridAlpha = 0.4
	t.LegendBackground = "black"
	t.LegendBorder = "white"
	t.LegendText = "white"
	return t
}

// LightTheme returns the white-background preset. Layout matches OffWhiteTheme.
func LightTheme() ThemeConfig {
	t := OffWhiteTheme()
	t.Background = "white"
	t.CurrentColor = "#1f77b4"
	t.PreviousColor = "#ff7f0e"
	t.BarEdgeColor = "#333333"
	t.TextColor = "#222222"
	t.GridColor = "#b0b0b0"
	t.GridAlpha = 0.6
	t.LegendBackground = "white"
	t.LegendBorder = "#b0b0b0"
	t.LegendText = "#222222"
	return t
}

// PaperTheme returns the label-wrapping preset
func PaperTheme() ThemeConfig {
	t := LightTheme()
	t.WrapWidth = 12
	t.LabelRotation = 0
	t.TitleFontSize = 12
	t.TitleBold = true
	return t
}
