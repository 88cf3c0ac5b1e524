package chart

import (
	"math"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Annotation returns the text shown above a bar: the integer part of v,
// truncated toward zero. Negative zero prints as "0".
func Annotation(v float64) string {
	t := math.Trunc(v)
	if t == 0 {
		return "0"
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

// newAnnotations places one value label over every bar of the given series
func newAnnotations(series []*bars, s *style) (*plotter.Labels, error) {
	var (
		xys    plotter.XYs
		labels []string
	)
	for _, b := range series {
		for i, v := range b.values {
			xys = append(xys, plotter.XY{X: b.center(i), Y: v})
			labels = append(labels, Annotation(v))
		}
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bar annotations")
	}

	for i := range l.TextStyle {
		l.TextStyle[i].Color = s.text
		l.TextStyle[i].Font = s.annotationFont
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
	}
	l.Offset = vg.Point{Y: vg.Points(1)}

	return l, nil
}
