package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chartd/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"github.com/secmon-lab/chartd/pkg/service/chart"
	"github.com/secmon-lab/chartd/pkg/usecase"
)

func newRequest(theme types.ThemeName) *model.ChartRequest {
	return &model.ChartRequest{
		Labels:   []string{"Auto", "Home"},
		Current:  []float64{10, 20},
		Previous: []float64{5, 15},
		Theme:    theme,
	}
}

func stubRenderer() *mocks.ChartRendererMock {
	return &mocks.ChartRendererMock{
		RenderFunc: func(ctx context.Context, req *model.ChartRequest, theme *model.ThemeConfig) (*model.RenderedChart, error) {
			return &model.RenderedChart{Data: []byte("png"), MIMEType: model.MIMETypePNG}, nil
		},
	}
}

func TestChartUseCase_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("uses default theme when request has none", func(t *testing.T) {
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, model.NewThemeSet())

		result, err := uc.Render(ctx, newRequest(""))
		gt.NoError(t, err).Required()
		gt.Equal(t, result.DataURI(), "data:image/png;base64,cG5n")

		calls := renderer.RenderCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Theme.Background, model.OffWhiteTheme().Background)
	})

	t.Run("uses requested theme", func(t *testing.T) {
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, model.NewThemeSet())

		_, err := uc.Render(ctx, newRequest(types.ThemeDark))
		gt.NoError(t, err).Required()

		calls := renderer.RenderCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, *calls[0].Theme, model.DarkTheme())
	})

	t.Run("uses configured default theme", func(t *testing.T) {
		themes := model.NewThemeSet()
		gt.NoError(t, themes.SetDefault(types.ThemePaper)).Required()
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, themes)

		_, err := uc.Render(ctx, newRequest(""))
		gt.NoError(t, err).Required()
		gt.Equal(t, *renderer.RenderCalls()[0].Theme, model.PaperTheme())
	})

	t.Run("nil theme set falls back to built-in presets", func(t *testing.T) {
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, nil)

		_, err := uc.Render(ctx, newRequest(types.ThemeLight))
		gt.NoError(t, err)
		gt.Equal(t, len(renderer.RenderCalls()), 1)
	})

	t.Run("unknown theme is a client error", func(t *testing.T) {
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, model.NewThemeSet())

		_, err := uc.Render(ctx, newRequest("neon"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnknownTheme))
		gt.Equal(t, model.ClientReason(err), "unknown theme")
		gt.Equal(t, len(renderer.RenderCalls()), 0)
	})

	t.Run("missing data is rejected before rendering", func(t *testing.T) {
		renderer := stubRenderer()
		uc := usecase.NewChartUseCase(renderer, model.NewThemeSet())

		req := newRequest("")
		req.Labels = nil
		_, err := uc.Render(ctx, req)
		gt.True(t, errors.Is(err, model.ErrMissingData))
		gt.Equal(t, len(renderer.RenderCalls()), 0)
	})

	t.Run("nil request is an invalid payload", func(t *testing.T) {
		uc := usecase.NewChartUseCase(stubRenderer(), model.NewThemeSet())

		_, err := uc.Render(ctx, nil)
		gt.True(t, errors.Is(err, model.ErrInvalidPayload))
	})

	t.Run("renderer failure is a server error", func(t *testing.T) {
		renderer := &mocks.ChartRendererMock{
			RenderFunc: func(ctx context.Context, req *model.ChartRequest, theme *model.ThemeConfig) (*model.RenderedChart, error) {
				return nil, goerr.Wrap(model.ErrRender, "boom")
			},
		}
		uc := usecase.NewChartUseCase(renderer, model.NewThemeSet())

		_, err := uc.Render(ctx, newRequest(""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrRender))
		gt.False(t, model.IsClientError(err))
		gt.S(t, err.Error()).Contains("failed to render chart")
	})
}

func TestChartUseCase_RenderWithChartService(t *testing.T) {
	uc := usecase.NewChartUseCase(chart.New(), model.NewThemeSet())

	for _, name := range []types.ThemeName{types.ThemeOffWhite, types.ThemeDark, types.ThemeLight, types.ThemePaper} {
		t.Run(name.String(), func(t *testing.T) {
			result, err := uc.Render(context.Background(), newRequest(name))
			gt.NoError(t, err).Required()
			gt.Equal(t, result.MIMEType, model.MIMETypePNG)
			gt.S(t, result.DataURI()).Contains("data:image/png;base64,iVBORw0KGgo")
		})
	}
}

func TestChartUseCase_Themes(t *testing.T) {
	themes := model.NewThemeSet()
	gt.NoError(t, themes.SetDefault(types.ThemeDark)).Required()
	uc := usecase.NewChartUseCase(stubRenderer(), themes)

	def, names := uc.Themes()
	gt.Equal(t, def, types.ThemeDark)
	gt.Equal(t, names, []types.ThemeName{types.ThemeDark, types.ThemeLight, types.ThemeOffWhite, types.ThemePaper})
}
