package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/cli/config"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"github.com/secmon-lab/chartd/pkg/service/chart"
	"github.com/secmon-lab/chartd/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		themeCfg  config.Theme
		input     string
		output    string
		dataURI   bool
		themeName string
	)

	flags := joinFlags(
		themeCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Chart request JSON file (stdin if not set or \"-\")",
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "PNG output file",
				Destination: &output,
			},
			&cli.BoolFlag{
				Name:        "data-uri",
				Usage:       "Print the chart as a data URI to stdout",
				Destination: &dataURI,
			},
			&cli.StringFlag{
				Name:        "use-theme",
				Usage:       "Theme for this chart, overriding the request's theme field",
				Destination: &themeName,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render a chart request to a PNG file or data URI",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if output == "" && !dataURI {
				return goerr.New("either --output or --data-uri is required")
			}

			themes, err := themeCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure themes")
			}

			in, closeInput, err := openInput(c, input)
			if err != nil {
				return err
			}
			defer closeInput()

			req, err := model.ParseChartRequest(in)
			if err != nil {
				return goerr.Wrap(err, "failed to read chart request", goerr.V("input", input))
			}
			if themeName != "" {
				req.Theme = types.ThemeName(themeName).Normalize()
			}

			result, err := usecase.NewChartUseCase(chart.New(), themes).Render(ctx, req)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, result.Data, 0o644); err != nil {
					return goerr.Wrap(err, "failed to write chart", goerr.V("path", output))
				}
				ctxlog.From(ctx).Info("Chart written",
					slog.String("path", output),
					slog.Int("bytes", result.Size()),
				)
			}

			if dataURI {
				w := c.Root().Writer
				if w == nil {
					w = os.Stdout
				}
				if _, err := fmt.Fprintln(w, result.DataURI()); err != nil {
					return goerr.Wrap(err, "failed to write data URI")
				}
			}

			return nil
		},
	}
}

// openInput returns the request source: the named file, or stdin for "" and "-"
func openInput(c *cli.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		r := c.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		return r, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open chart request", goerr.V("path", path))
	}
	return f, func() { _ = f.Close() }, nil
}
