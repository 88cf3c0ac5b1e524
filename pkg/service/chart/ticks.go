package chart

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"gonum.org/v1/plot"
)

// WrapLabel reflows a category label into lines of at most width characters.
// Words longer than width are kept whole. width <= 0 returns the label unchanged.
func WrapLabel(label string, width int) string {
	if width <= 0 {
		return label
	}
	return wordwrap.WrapString(strings.Join(strings.Fields(label), " "), uint(width))
}

// categoryTicks places one label at every integer category position
func categoryTicks(labels []string, wrapWidth int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, label := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: WrapLabel(label, wrapWidth)}
	}
	return ticks
}
