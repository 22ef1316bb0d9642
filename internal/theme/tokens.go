// Package theme turns palettes into per-state style sheets for widgets.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ThemeTokens defines the semantic color roles of a palette.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Highlight  string
	Selection  string
	Disabled   string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// ErrUnknownTheme is returned by Lookup for names not in Themes.
var ErrUnknownTheme = errors.New("unknown theme")

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	DefaultTheme.Name:      DefaultTheme,
	HighContrastTheme.Name: HighContrastTheme,
}

// Lookup returns the named theme. An empty name selects the default.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTheme, nil
	}
	t, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
