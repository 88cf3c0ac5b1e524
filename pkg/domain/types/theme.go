package types

import "strings"

// ThemeName is the name of a chart theme preset
type ThemeName string

const (
	ThemeOffWhite ThemeName = "off-white"
	ThemeDark     ThemeName = "dark"
	ThemeLight    ThemeName = "light"
	ThemePaper    ThemeName = "paper"

	// DefaultTheme is used when neither the request nor the configuration names a theme
	DefaultTheme = ThemeOffWhite
)

// String returns the string representation
func (n ThemeName) String() string {
	return string(n)
}

// IsEmpty returns true if no theme is named
func (n ThemeName) IsEmpty() bool {
	return n == ""
}

// Normalize lowercases the name and trims surrounding whitespace
func (n ThemeName) Normalize() ThemeName {
	return ThemeName(strings.ToLower(strings.TrimSpace(string(n))))
}

// IsValid checks if the name can be used as a theme key
func (n ThemeName) IsValid() bool {
	if n == "" || len(n) > 64 {
		return false
	}
	for _, r := range string(n) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
