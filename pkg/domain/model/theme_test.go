package model_test

import (
	"encoding/base64"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"SkyBlue", color.NRGBA{0x87, 0xce, 0xeb, 255}},
		{"darkolivegreen", color.NRGBA{0x55, 0x6b, 0x2f, 255}},
		{"cornflowerblue", color.NRGBA{0x64, 0x95, 0xed, 255}},
		{" lightgoldenrodyellow ", color.NRGBA{0xfa, 0xfa, 0xd2, 255}},
		{"#f4f4f4", color.NRGBA{0xf4, 0xf4, 0xf4, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := model.ParseColor(tt.input)
			gt.NoError(t, err)
			gt.Equal(t, c, tt.expected)
		})
	}

	for _, input := range []string{"", "chartreuse-ish", "#12", "#gggggg", "f4f4f4"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := model.ParseColor(input)
			gt.Error(t, err)
		})
	}
}

func TestWithAlpha(t *testing.T) {
	gray := color.NRGBA{128, 128, 128, 255}
	gt.Equal(t, model.WithAlpha(gray, 0.6).A, uint8(153))
	gt.Equal(t, model.WithAlpha(gray, 1.5).A, uint8(255))
	gt.Equal(t, model.WithAlpha(gray, -1).A, uint8(0))
}

func TestBuiltinThemesAreValid(t *testing.T) {
	themes := map[string]model.ThemeConfig{
		"off-white": model.OffWhiteTheme(),
		"dark":      model.DarkTheme(),
		"light":     model.LightTheme(),
		"paper":     model.PaperTheme(),
	}
	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			gt.NoError(t, theme.Validate())
		})
	}

	t.Run("only paper wraps", func(t *testing.T) {
		off, dark, light, paper := model.OffWhiteTheme(), model.DarkTheme(), model.LightTheme(), model.PaperTheme()
		gt.False(t, off.Wraps())
		gt.False(t, dark.Wraps())
		gt.False(t, light.Wraps())
		gt.True(t, paper.Wraps())
	})
}

func TestThemeConfigValidate(t *testing.T) {
	t.Run("error when colour is invalid", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.GridColor = "not-a-colour"
		gt.Error(t, theme.Validate())
	})

	t.Run("error when series colours are equal", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.PreviousColor = "#87ceeb"
		gt.Error(t, theme.Validate())
	})

	t.Run("error when bar width exceeds half a unit", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.BarWidth = 0.6
		gt.Error(t, theme.Validate())
	})

	t.Run("error when wrap width is negative", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.WrapWidth = -1
		gt.Error(t, theme.Validate())
	})

	t.Run("error when figure is empty", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.DPI = 0
		gt.Error(t, theme.Validate())
	})

	t.Run("error when grid alpha is out of range", func(t *testing.T) {
		theme := model.OffWhiteTheme()
		theme.GridAlpha = 2
		gt.Error(t, theme.Validate())
	})
}

func TestThemeSet(t *testing.T) {
	t.Run("built-in presets", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Equal(t, set.Default(), types.ThemeOffWhite)
		gt.Equal(t, set.Names(), []types.ThemeName{
			types.ThemeDark, types.ThemeLight, types.ThemeOffWhite, types.ThemePaper,
		})
	})

	t.Run("empty name resolves to default", func(t *testing.T) {
		set := model.NewThemeSet()
		theme, name, err := set.Lookup("")
		gt.NoError(t, err).Required()
		gt.Equal(t, name, types.ThemeOffWhite)
		gt.Equal(t, theme.Background, "#f4f4f4")
	})

	t.Run("unknown name", func(t *testing.T) {
		set := model.NewThemeSet()
		_, _, err := set.Lookup("neon")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnknownTheme))
		gt.True(t, model.IsClientError(err))
	})

	t.Run("lookup returns a copy", func(t *testing.T) {
		set := model.NewThemeSet()
		theme, _, err := set.Lookup(types.ThemeDark)
		gt.NoError(t, err).Required()
		theme.Background = "white"

		again, _, err := set.Lookup(types.ThemeDark)
		gt.NoError(t, err).Required()
		gt.Equal(t, again.Background, "black")
	})

	t.Run("set default", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.NoError(t, set.SetDefault("Dark"))
		gt.Equal(t, set.Default(), types.ThemeDark)
		gt.Error(t, set.SetDefault("neon"))
	})

	t.Run("add rejects invalid names and themes", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Error(t, set.Add("Bad Name", model.OffWhiteTheme()))

		broken := model.OffWhiteTheme()
		broken.DPI = -1
		gt.Error(t, set.Add("broken", broken))
	})
}

func TestThemeSetMergeYAML(t *testing.T) {
	t.Run("entries inherit from base", func(t *testing.T) {
		set := model.NewThemeSet()
		err := set.MergeYAML([]byte(`
default: brand
themes:
  - name: brand
    base: dark
    current_color: "#005f73"
    wrap_width: 8
  - name: brand-print
    base: brand
    background: white
`))
		gt.NoError(t, err).Required()
		gt.Equal(t, set.Default(), types.ThemeName("brand"))

		brand, _, err := set.Lookup("brand")
		gt.NoError(t, err).Required()
		gt.Equal(t, brand.CurrentColor, "#005f73")
		gt.Equal(t, brand.WrapWidth, 8)
		gt.Equal(t, brand.Background, "black")
		gt.Equal(t, brand.PreviousColor, "orange")

		printTheme, _, err := set.Lookup("brand-print")
		gt.NoError(t, err).Required()
		gt.Equal(t, printTheme.Background, "white")
		gt.Equal(t, printTheme.CurrentColor, "#005f73")
	})

	t.Run("entry without base starts from default", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.NoError(t, set.MergeYAML([]byte("themes:\n  - name: tall\n    height: 8\n"))).Required()
		tall, _, err := set.Lookup("tall")
		gt.NoError(t, err).Required()
		gt.Equal(t, tall.Height, 8.0)
		gt.Equal(t, tall.Background, "#f4f4f4")
	})

	t.Run("built-in preset can be overridden", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.NoError(t, set.MergeYAML([]byte("themes:\n  - name: dark\n    base: dark\n    grid_alpha: 0.2\n"))).Required()
		dark, _, err := set.Lookup(types.ThemeDark)
		gt.NoError(t, err).Required()
		gt.Equal(t, dark.GridAlpha, 0.2)
	})

	t.Run("error when base is unknown", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Error(t, set.MergeYAML([]byte("themes:\n  - name: x\n    base: neon\n")))
	})

	t.Run("error when result is invalid", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Error(t, set.MergeYAML([]byte("themes:\n  - name: x\n    background: nope\n")))
	})

	t.Run("error when default is unknown", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Error(t, set.MergeYAML([]byte("default: neon\n")))
	})

	t.Run("error when YAML is malformed", func(t *testing.T) {
		set := model.NewThemeSet()
		gt.Error(t, set.MergeYAML([]byte("themes: [")))
	})
}

func TestRenderedChartDataURI(t *testing.T) {
	chart := &model.RenderedChart{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: model.MIMETypePNG}
	uri := chart.DataURI()
	gt.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	gt.NoError(t, err)
	gt.Equal(t, decoded, chart.Data)
	gt.Equal(t, chart.Size(), 4)
}
