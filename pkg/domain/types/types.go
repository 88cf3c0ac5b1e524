package types

import (
	"github.com/google/uuid"
)

// RenderID identifies a single render operation in logs
type RenderID string

// String returns the string representation
func (id RenderID) String() string {
	return string(id)
}

// NewRenderID creates a new RenderID using UUID v7
func NewRenderID() RenderID {
	id, err := uuid.NewV7()
	if err != nil {
		return RenderID(uuid.New().String())
	}
	return RenderID(id.String())
}

// Series identifies one of the two paired numeric series of a chart
type Series string

const (
	SeriesCurrent  Series = "current"
	SeriesPrevious Series = "previous"
)

// String returns the string representation
func (s Series) String() string {
	return string(s)
}

// Title returns the legend caption of the series
func (s Series) Title() string {
	switch s {
	case SeriesCurrent:
		return "Current"
	case SeriesPrevious:
		return "Previous"
	default:
		return string(s)
	}
}
