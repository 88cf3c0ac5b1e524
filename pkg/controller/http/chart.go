package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/chartd/pkg/domain/interfaces"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"github.com/secmon-lab/chartd/pkg/utils/apperr"
)

// ChartHandler serves chart rendering requests
type ChartHandler struct {
	chartUC      interfaces.Chart
	maxBodyBytes int64
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(chartUC interfaces.Chart, maxBodyBytes int64) *ChartHandler {
	return &ChartHandler{
		chartUC:      chartUC,
		maxBodyBytes: maxBodyBytes,
	}
}

type chartResponse struct {
	Image string `json:"image"`
}

type themesResponse struct {
	Default types.ThemeName   `json:"default"`
	Themes  []types.ThemeName `json:"themes"`
}

// HandleChart renders the posted chart and returns it as a data URI.
// The theme is taken from the route, then the body, then the query string.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req, err := model.ParseChartRequest(body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if name := chi.URLParam(r, "theme"); name != "" {
		req.Theme = types.ThemeName(name).Normalize()
	} else if req.Theme.IsEmpty() {
		req.Theme = types.ThemeName(r.URL.Query().Get("theme")).Normalize()
	}

	chart, err := h.chartUC.Render(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, chartResponse{Image: chart.DataURI()})
}

// HandleThemes lists the available themes
func (h *ChartHandler) HandleThemes(w http.ResponseWriter, r *http.Request) {
	def, names := h.chartUC.Themes()
	writeJSON(r.Context(), w, http.StatusOK, themesResponse{
		Default: def,
		Themes:  names,
	})
}

// writeError writes an error response. Client errors carry their short
// reason with 400, anything else the error message with 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	apperr.Handle(ctx, err)

	status := http.StatusInternalServerError
	message := err.Error()
	if reason := model.ClientReason(err); reason != "" {
		status = http.StatusBadRequest
		message = reason
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
