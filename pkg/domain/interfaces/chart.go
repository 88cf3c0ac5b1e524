package interfaces

//go:generate moq -out mocks/chart_mock.go -pkg mocks . ChartRenderer Chart

import (
	"context"

	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
)

// ChartRenderer draws a validated chart request with a resolved theme
type ChartRenderer interface {
	Render(ctx context.Context, req *model.ChartRequest, theme *model.ThemeConfig) (*model.RenderedChart, error)
}

// Chart defines the interface for chart rendering operations
type Chart interface {
	// Render resolves the request theme and draws the chart
	Render(ctx context.Context, req *model.ChartRequest) (*model.RenderedChart, error)

	// Themes returns the default theme name and all available theme names
	Themes() (types.ThemeName, []types.ThemeName)
}
