package model

import (
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chartd/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// ThemeSet holds the theme presets available to a server and its default theme.
// It is read-only once the server starts.
type ThemeSet struct {
	themes      map[types.ThemeName]ThemeConfig
	defaultName types.ThemeName
}

// NewThemeSet creates a theme set with the built-in presets
func NewThemeSet() *ThemeSet {
	return &ThemeSet{
		themes: map[types.ThemeName]ThemeConfig{
			types.ThemeOffWhite: OffWhiteTheme(),
			types.ThemeDark:     DarkTheme(),
			types.ThemeLight:    LightTheme(),
			types.ThemePaper:    PaperTheme(),
		},
		defaultName: types.DefaultTheme,
	}
}

// Add registers or replaces a preset
func (s *ThemeSet) Add(name types.ThemeName, theme ThemeConfig) error {
	if !name.IsValid() {
		return goerr.New("invalid theme name", goerr.V("name", name))
	}
	if err := theme.Validate(); err != nil {
		return goerr.Wrap(err, "invalid theme", goerr.V("name", name))
	}
	s.themes[name] = theme
	return nil
}

// SetDefault selects the theme used when a request names none
func (s *ThemeSet) SetDefault(name types.ThemeName) error {
	name = name.Normalize()
	if _, ok := s.themes[name]; !ok {
		return goerr.Wrap(ErrUnknownTheme, "default theme is not defined",
			goerr.V("name", name),
			goerr.V("available", s.Names()))
	}
	s.defaultName = name
	return nil
}

// Default returns the name of the default theme
func (s *ThemeSet) Default() types.ThemeName {
	return s.defaultName
}

// Lookup returns a copy of the named preset. Empty name resolves to the default.
func (s *ThemeSet) Lookup(name types.ThemeName) (*ThemeConfig, types.ThemeName, error) {
	name = name.Normalize()
	if name.IsEmpty() {
		name = s.defaultName
	}

	theme, ok := s.themes[name]
	if !ok {
		return nil, "", goerr.Wrap(ErrUnknownTheme, "theme is not defined",
			goerr.V("name", name))
	}
	return &theme, name, nil
}

// Names returns all preset names in sorted order
func (s *ThemeSet) Names() []types.ThemeName {
	names := make([]types.ThemeName, 0, len(s.themes))
	for name := range s.themes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// MergeYAML adds or overrides presets from a YAML document such as:
//
//	default: brand
//	themes:
//	  - name: brand
//	    base: light
//	    current_color: "#005f73"
//
// Entries are applied in order, so an entry may use an earlier one as base.
func (s *ThemeSet) MergeYAML(data []byte) error {
	var doc struct {
		Default types.ThemeName `yaml:"default"`
		Themes  []yaml.Node     `yaml:"themes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return goerr.Wrap(err, "failed to parse theme YAML")
	}

	for i, node := range doc.Themes {
		var header struct {
			Name types.ThemeName `yaml:"name"`
			Base types.ThemeName `yaml:"base"`
		}
		if err := node.Decode(&header); err != nil {
			return goerr.Wrap(err, "failed to parse theme entry", goerr.V("index", i))
		}

		name := header.Name.Normalize()
		base, _, err := s.Lookup(header.Base)
		if err != nil {
			return goerr.Wrap(err, "unknown base theme",
				goerr.V("index", i),
				goerr.V("name", name),
				goerr.V("base", header.Base))
		}

		theme := *base
		if err := node.Decode(&theme); err != nil {
			return goerr.Wrap(err, "failed to parse theme entry",
				goerr.V("index", i),
				goerr.V("name", name))
		}

		if err := s.Add(name, theme); err != nil {
			return goerr.Wrap(err, "failed to add theme", goerr.V("index", i))
		}
	}

	if !doc.Default.IsEmpty() {
		if err := s.SetDefault(doc.Default); err != nil {
			return err
		}
	}

	return nil
}
