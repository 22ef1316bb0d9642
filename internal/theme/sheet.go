package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/style"
)

// ErrUnknownStyle is returned for sheet entries that do not exist.
var ErrUnknownStyle = errors.New("unknown style")

// GroupSpec declares a style group as plain strings, as read from config.
// Empty fields other than Normal mean "no override".
type GroupSpec struct {
	Normal      string `mapstructure:"normal"`
	Highlighted string `mapstructure:"highlighted"`
	Selected    string `mapstructure:"selected"`
	Disabled    string `mapstructure:"disabled"`
	Focused     string `mapstructure:"focused"`
}

// Sheet holds the named color and glyph styles of a theme.
type Sheet struct {
	Theme  Theme
	colors map[string]style.ColorStyle
	glyphs map[string]style.GlyphStyle
}

// NewSheet derives the built-in style groups from the theme tokens.
func NewSheet(t Theme) *Sheet {
	tk := t.Tokens
	s := &Sheet{
		Theme:  t,
		colors: make(map[string]style.ColorStyle),
		glyphs: make(map[string]style.GlyphStyle),
	}

	s.colors["button.title"] = colorGroup(GroupSpec{
		Normal:      tk.Text,
		Highlighted: tk.Highlight,
		Selected:    tk.Accent,
		Disabled:    tk.Disabled,
	})
	s.colors["button.background"] = colorGroup(GroupSpec{
		Normal:      tk.Panel,
		Highlighted: tk.Selection,
		Selected:    tk.Selection,
	})
	s.colors["button.border"] = colorGroup(GroupSpec{
		Normal:      tk.Border,
		Highlighted: tk.Highlight,
		Disabled:    tk.Disabled,
		Focused:     tk.Focus,
	})
	s.glyphs["button.glyph"] = glyphGroup(GroupSpec{
		Normal:      "○",
		Highlighted: "◉",
		Selected:    "●",
		Disabled:    "⊘",
	})

	s.colors["label.text"] = colorGroup(GroupSpec{
		Normal:      tk.Text,
		Highlighted: tk.Highlight,
		Disabled:    tk.Disabled,
	})

	s.glyphs["toggle.glyph"] = glyphGroup(GroupSpec{
		Normal:   "[ ]",
		Selected: "[x]",
		Disabled: "[-]",
	})
	s.colors["toggle.color"] = colorGroup(GroupSpec{
		Normal:   tk.TextMuted,
		Selected: tk.Success,
		Disabled: tk.Disabled,
		Focused:  tk.Focus,
	})

	s.colors["list.text"] = colorGroup(GroupSpec{
		Normal:      tk.Text,
		Highlighted: tk.Highlight,
		Selected:    tk.Accent,
		Focused:     tk.Focus,
	})
	s.colors["list.background"] = colorGroup(GroupSpec{
		Normal:   tk.Background,
		Selected: tk.Selection,
	})
	// Bound with highlighted excluded so a pressed row keeps its marker.
	s.glyphs["list.marker"] = glyphGroup(GroupSpec{
		Normal:   " ",
		Selected: "›",
	})

	s.colors["icon.color"] = colorGroup(GroupSpec{
		Normal:      tk.Info,
		Highlighted: tk.Warning,
	})
	s.glyphs["icon.glyph"] = style.Icon("◆")

	return s
}

// Color returns the named color style.
func (s *Sheet) Color(name string) (style.ColorStyle, error) {
	c, ok := s.colors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return c, nil
}

// Glyph returns the named glyph style.
func (s *Sheet) Glyph(name string) (style.GlyphStyle, error) {
	g, ok := s.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return g, nil
}

// Names returns every entry name in sorted order.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.colors)+len(s.glyphs))
	for name := range s.colors {
		names = append(names, name)
	}
	for name := range s.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override replaces an existing entry with a group built from spec.
func (s *Sheet) Override(name string, spec GroupSpec) error {
	if strings.TrimSpace(spec.Normal) == "" {
		return fmt.Errorf("style %q: %w", name, style.ErrMissingNormal)
	}
	if _, ok := s.colors[name]; ok {
		s.colors[name] = colorGroup(spec)
		return nil
	}
	if _, ok := s.glyphs[name]; ok {
		s.glyphs[name] = glyphGroup(spec)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Describe resolves a named entry to printable per-state values, in the
// order a multi-value property receives them.
func (s *Sheet) Describe(name string) ([]style.StateValue[string], error) {
	if c, ok := s.colors[name]; ok {
		return describe(style.ResolveAll(c), colorString), nil
	}
	if g, ok := s.glyphs[name]; ok {
		return describe(style.ResolveAll(g), func(v style.Glyph) string { return string(v) }), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// ResolveString resolves a named entry for target and formats the result.
func (s *Sheet) ResolveString(name string, target any, exclude style.StateSet) (string, error) {
	if c, ok := s.colors[name]; ok {
		return colorString(style.ResolveSingle(c, target, exclude)), nil
	}
	if g, ok := s.glyphs[name]; ok {
		return string(style.ResolveSingle(g, target, exclude)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

func describe[V any](values []style.StateValue[V], format func(V) string) []style.StateValue[string] {
	out := make([]style.StateValue[string], 0, len(values))
	for _, sv := range values {
		out = append(out, style.StateValue[string]{State: sv.State, Value: format(sv.Value)})
	}
	return out
}

func colorString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case lipgloss.Color:
		return string(v)
	case nil, lipgloss.NoColor:
		return "none"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// buildGroup assembles a composite from spec. Normal must be non-empty.
func buildGroup[V any](spec GroupSpec, lit func(string) style.Style[V]) *style.Composite[V] {
	var opts []style.CompositeOption[V]
	if spec.Highlighted != "" {
		opts = append(opts, style.WithHighlighted(lit(spec.Highlighted)))
	}
	if spec.Selected != "" {
		opts = append(opts, style.WithSelected(lit(spec.Selected)))
	}
	if spec.Disabled != "" {
		opts = append(opts, style.WithDisabled(lit(spec.Disabled)))
	}
	if spec.Focused != "" {
		opts = append(opts, style.WithFocused(lit(spec.Focused)))
	}
	return style.MustComposite(lit(spec.Normal), opts...)
}

func colorGroup(spec GroupSpec) style.ColorStyle {
	return buildGroup(spec, func(v string) style.Style[lipgloss.TerminalColor] {
		return style.Color(v)
	})
}

func glyphGroup(spec GroupSpec) style.GlyphStyle {
	return buildGroup(spec, func(v string) style.Style[style.Glyph] {
		return style.Icon(v)
	})
}
