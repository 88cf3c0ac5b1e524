package chart_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chartd/pkg/service/chart"
)

func TestAnnotationTruncates(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{10, "10"},
		{7.9, "7"},
		{7.1, "7"},
		{-3.2, "-3"},
		{-3.9, "-3"},
		{-0.5, "0"},
		{0.99, "0"},
		{0, "0"},
		{1e21, "1000000000000000000000"},
		{-123456789.75, "-123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			gt.Equal(t, chart.Annotation(tt.value), tt.expected)
		})
	}
}

func TestWrapLabel(t *testing.T) {
	t.Run("wraps at word boundaries", func(t *testing.T) {
		gt.Equal(t, chart.WrapLabel("Commercial Auto Liability", 12), "Commercial\nAuto\nLiability")
	})

	t.Run("short label is unchanged", func(t *testing.T) {
		gt.Equal(t, chart.WrapLabel("Home", 12), "Home")
	})

	t.Run("zero width disables wrapping", func(t *testing.T) {
		gt.Equal(t, chart.WrapLabel("Commercial Auto Liability", 0), "Commercial Auto Liability")
	})

	t.Run("long word is kept whole", func(t *testing.T) {
		gt.Equal(t, chart.WrapLabel("Reinsurance", 4), "Reinsurance")
	})

	t.Run("repeated whitespace collapses", func(t *testing.T) {
		gt.Equal(t, chart.WrapLabel("  Auto   Home ", 20), "Auto Home")
	})
}
