package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	Output string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("CHARTD_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("CHARTD_LOG_FORMAT"),
			Destination: &l.Format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log destination (stderr, stdout or a file path)",
			Category:    "Logging",
			Value:       "stderr",
			Sources:     cli.EnvVars("CHARTD_LOG_OUTPUT"),
			Destination: &l.Output,
		},
	}
}

// Configure sets up the logger based on configuration. The returned closer
// releases the log file, if any.
func (l *Logger) Configure() (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch l.Output {
	case "stderr", "-", "":
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(l.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.Output))
		}
		w, closer = f, f
	}

	return logging.NewLogger(w, level, format), closer, nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
		slog.String("output", l.Output),
	)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
