package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/interfaces"
)

// DefaultMaxBodyBytes is the request body limit used when none is configured
const DefaultMaxBodyBytes int64 = 1 << 20

// Config holds HTTP server configuration
type Config struct {
	addr         string
	maxBodyBytes int64
}

// NewConfig creates a new Config. maxBodyBytes <= 0 selects DefaultMaxBodyBytes.
func NewConfig(addr string, maxBodyBytes int64) *Config {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Config{
		addr:         addr,
		maxBodyBytes: maxBodyBytes,
	}
}

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	chart interfaces.Chart
}

// NewUseCases creates a new UseCases
func NewUseCases(chartUC interfaces.Chart) *UseCases {
	return &UseCases{
		chart: chartUC,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router       chi.Router
	config       *Config
	chartHandler *ChartHandler
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg *Config, useCases *UseCases) (*Server, error) {
	if cfg == nil {
		return nil, goerr.New("server config is required")
	}
	if useCases == nil || useCases.chart == nil {
		return nil, goerr.New("chart use case is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.NotFound(handleNotFound)
	router.MethodNotAllowed(handleMethodNotAllowed)

	chartHandler := NewChartHandler(useCases.chart, cfg.maxBodyBytes)

	// Health check
	router.Get("/health", handleHealth)

	// Chart routes
	router.Post("/chart", chartHandler.HandleChart)
	router.Post("/chart/{theme}", chartHandler.HandleChart)
	router.Get("/themes", chartHandler.HandleThemes)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:       router,
		config:       cfg,
		chartHandler: chartHandler,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "chartd",
	})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusNotFound, map[string]string{
		"error": "not found",
	})
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err, "status", status)
	}
}
