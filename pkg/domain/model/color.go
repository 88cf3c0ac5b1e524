package model

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/colornames"
)

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG 1.1 / CSS colour name
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		// named colours are opaque, so RGBA and NRGBA agree
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex, ok := strings.CutPrefix(v, "#")
	if !ok {
		return color.NRGBA{}, goerr.New("unknown colour", goerr.V("color", s))
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, goerr.New("invalid colour length", goerr.V("color", s))
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, goerr.Wrap(err, "invalid hex colour", goerr.V("color", s))
	}

	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// WithAlpha scales the colour's opacity by alpha in [0, 1]
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
