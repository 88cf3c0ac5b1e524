package config

import (
	"log/slog"

	controller "github.com/secmon-lab/chartd/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr         string
	MaxBodyBytes int64
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "0.0.0.0:5000",
			Sources:     cli.EnvVars("CHARTD_ADDR"),
			Destination: &s.Addr,
		},
		&cli.Int64Flag{
			Name:        "max-body-bytes",
			Usage:       "Maximum size of a chart request body in bytes",
			Value:       controller.DefaultMaxBodyBytes,
			Sources:     cli.EnvVars("CHARTD_MAX_BODY_BYTES"),
			Destination: &s.MaxBodyBytes,
		},
	}
}

// Configure returns the HTTP server configuration
func (s *Server) Configure() *controller.Config {
	return controller.NewConfig(s.Addr, s.MaxBodyBytes)
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Int64("maxBodyBytes", s.MaxBodyBytes),
	)
}
