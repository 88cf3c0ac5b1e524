package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/model"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Theme holds theme selection configuration
type Theme struct {
	Name string
	File string
}

// Flags returns CLI flags for Theme configuration
func (t *Theme) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "Default chart theme (off-white when not set by flag or theme file)",
			Category:    "Theme",
			Sources:     cli.EnvVars("CHARTD_THEME"),
			Destination: &t.Name,
		},
		&cli.StringFlag{
			Name:        "theme-file",
			Usage:       "YAML file defining additional or overriding chart themes",
			Category:    "Theme",
			Sources:     cli.EnvVars("CHARTD_THEME_FILE"),
			Destination: &t.File,
		},
	}
}

// Configure builds the theme set from built-in presets, the theme file and
// the default theme flag, in that order
func (t *Theme) Configure() (*model.ThemeSet, error) {
	themes := model.NewThemeSet()

	if t.File != "" {
		if err := LoadThemesFromFile(themes, t.File); err != nil {
			return nil, err
		}
	}

	if t.Name != "" {
		if err := themes.SetDefault(types.ThemeName(t.Name)); err != nil {
			return nil, goerr.Wrap(err, "invalid default theme",
				goerr.V("theme", t.Name),
				goerr.V("available", themes.Names()))
		}
	}

	return themes, nil
}

// LogValue returns structured log value
func (t Theme) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", t.Name),
		slog.String("file", t.File),
	)
}

// LoadThemesFromFile merges the themes defined in a YAML file into themes
func LoadThemesFromFile(themes *model.ThemeSet, path string) error {
	if path == "" {
		return goerr.New("theme file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(err, "theme file not found",
				goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read theme file",
			goerr.V("path", path))
	}

	if err := themes.MergeYAML(data); err != nil {
		return goerr.Wrap(err, "invalid theme file",
			goerr.V("path", path))
	}

	return nil
}
