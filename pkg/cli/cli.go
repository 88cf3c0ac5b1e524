package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application. A failure is logged once with the
// configured logger and returned.
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		logCloser io.Closer
	)
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()

	app := &cli.Command{
		Name:    "chartd",
		Usage:   "Grouped bar chart rendering service",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logCloser = closer

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRender(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		err = goerr.Wrap(err, "CLI execution failed")
		slog.Error("chartd failed", "error", err)
		return err
	}

	return nil
}
