package model

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/types"
)

// ChartRequest is a validated grouped bar chart request
type ChartRequest struct {
	Labels   []string
	Current  []float64
	Previous []float64

	// Theme is optional. Empty means the configured default.
	Theme types.ThemeName
}

// Len returns the number of label groups
func (r *ChartRequest) Len() int {
	return len(r.Labels)
}

// Values returns the values of the given series
func (r *ChartRequest) Values(s types.Series) []float64 {
	switch s {
	case types.SeriesCurrent:
		return r.Current
	case types.SeriesPrevious:
		return r.Previous
	default:
		return nil
	}
}

// Validate checks that all sequences are non-empty, equally long and finite
func (r *ChartRequest) Validate() error {
	if len(r.Labels) == 0 || len(r.Current) == 0 || len(r.Previous) == 0 {
		return ErrMissingData
	}

	if len(r.Current) != len(r.Labels) || len(r.Previous) != len(r.Labels) {
		return goerr.Wrap(ErrLengthMismatch, "sequence lengths differ",
			goerr.V("labels", len(r.Labels)),
			goerr.V("current", len(r.Current)),
			goerr.V("previous", len(r.Previous)))
	}

	for _, s := range []types.Series{types.SeriesCurrent, types.SeriesPrevious} {
		for i, v := range r.Values(s) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return goerr.Wrap(ErrNonFiniteValue, "value cannot be drawn",
					goerr.V("series", s),
					goerr.V("index", i),
					goerr.V("value", v))
			}
		}
	}

	return nil
}

// ParseChartRequest decodes and validates a JSON chart payload.
// Fields that are missing or not arrays are treated as empty.
func ParseChartRequest(r io.Reader) (*ChartRequest, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "failed to decode JSON body",
			goerr.V("cause", err.Error()))
	}
	if payload == nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "body must be a JSON object")
	}
	if err := decoder.Decode(new(any)); err != io.EOF {
		return nil, goerr.Wrap(ErrInvalidPayload, "body must hold a single JSON object")
	}

	rawLabels := arrayField(payload, "labels")
	rawCurrent := arrayField(payload, "current")
	rawPrevious := arrayField(payload, "previous")

	if len(rawLabels) == 0 || len(rawCurrent) == 0 || len(rawPrevious) == 0 {
		return nil, ErrMissingData
	}

	req := &ChartRequest{
		Labels: make([]string, len(rawLabels)),
	}
	if name, ok := payload["theme"].(string); ok {
		req.Theme = types.ThemeName(name).Normalize()
	}

	for i, v := range rawLabels {
		label, err := labelText(v)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid label", goerr.V("index", i))
		}
		req.Labels[i] = label
	}

	if len(rawCurrent) != len(rawLabels) || len(rawPrevious) != len(rawLabels) {
		return nil, goerr.Wrap(ErrLengthMismatch, "sequence lengths differ",
			goerr.V("labels", len(rawLabels)),
			goerr.V("current", len(rawCurrent)),
			goerr.V("previous", len(rawPrevious)))
	}

	var err error
	if req.Current, err = numbers(types.SeriesCurrent, rawCurrent); err != nil {
		return nil, err
	}
	if req.Previous, err = numbers(types.SeriesPrevious, rawPrevious); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

func arrayField(payload map[string]any, key string) []any {
	v, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	return v
}

func labelText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		// nested objects and arrays are shown as their compact JSON text
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(t); err != nil {
			return "", goerr.Wrap(ErrInvalidPayload, "label cannot be converted to text")
		}
		return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
	}
}

func numbers(s types.Series, raw []any) ([]float64, error) {
	values := make([]float64, len(raw))
	for i, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			return nil, goerr.Wrap(ErrInvalidValue, "value is not a number",
				goerr.V("series", s),
				goerr.V("index", i),
				goerr.V("value", v))
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidValue, "value is out of range",
				goerr.V("series", s),
				goerr.V("index", i),
				goerr.V("value", n.String()))
		}
		values[i] = f
	}
	return values, nil
}
