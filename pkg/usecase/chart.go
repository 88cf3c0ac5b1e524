package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/interfaces"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
)

// ChartUseCase implements the Chart interface
type ChartUseCase struct {
	renderer interfaces.ChartRenderer
	themes   *model.ThemeSet
}

// NewChartUseCase creates a new ChartUseCase instance. A nil theme set
// falls back to the built-in presets.
func NewChartUseCase(renderer interfaces.ChartRenderer, themes *model.ThemeSet) interfaces.Chart {
	if themes == nil {
		themes = model.NewThemeSet()
	}
	return &ChartUseCase{
		renderer: renderer,
		themes:   themes,
	}
}

// Render resolves the theme of req and draws it
func (u *ChartUseCase) Render(ctx context.Context, req *model.ChartRequest) (*model.RenderedChart, error) {
	if req == nil {
		return nil, goerr.Wrap(model.ErrInvalidPayload, "chart request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	theme, name, err := u.themes.Lookup(req.Theme)
	if err != nil {
		return nil, err
	}

	renderID := types.NewRenderID()
	logger := ctxlog.From(ctx).With(
		"renderID", renderID,
		"theme", name,
		"labels", req.Len(),
	)
	ctx = ctxlog.With(ctx, logger)

	start := time.Now()
	chart, err := u.renderer.Render(ctx, req, theme)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to render chart",
			goerr.V("renderID", renderID),
			goerr.V("theme", name))
	}

	logger.Info("Chart rendered",
		"bytes", chart.Size(),
		"duration", time.Since(start),
	)

	return chart, nil
}

// Themes returns the default theme name and all available theme names
func (u *ChartUseCase) Themes() (types.ThemeName, []types.ThemeName) {
	return u.themes.Default(), u.themes.Names()
}
