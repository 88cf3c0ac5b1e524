package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/cli/config"
	controller "github.com/secmon-lab/chartd/pkg/controller/http"
	"github.com/secmon-lab/chartd/pkg/service/chart"
	"github.com/secmon-lab/chartd/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		themeCfg  config.Theme
	)

	flags := joinFlags(
		serverCfg.Flags(),
		themeCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting chartd server",
				slog.Any("server", serverCfg),
				slog.Any("theme", themeCfg),
			)

			themes, err := themeCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure themes")
			}

			chartUC := usecase.NewChartUseCase(chart.New(), themes)

			// Create HTTP server
			server, err := controller.NewServer(
				ctx,
				serverCfg.Configure(),
				controller.NewUseCases(chartUC),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting",
					slog.String("addr", serverCfg.Addr),
					slog.String("defaultTheme", themes.Default().String()),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
