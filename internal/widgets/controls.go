package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/style"
)

// Label reports highlight and enabled state only.
type Label struct {
	base
	highlighted bool
	enabled     bool

	TextColor lipgloss.TerminalColor
}

func NewLabel(title string) *Label {
	return &Label{base: newBase(title), enabled: true}
}

func (l *Label) Kind() string { return "label" }

func (l *Label) IsHighlighted() bool { return l.highlighted }
func (l *Label) IsEnabled() bool     { return l.enabled }

func (l *Label) SetHighlighted(v bool) { l.highlighted = v }
func (l *Label) SetEnabled(v bool)     { l.enabled = v }

func (l *Label) Render() string {
	return lipgloss.NewStyle().Foreground(colorOrNone(l.TextColor)).Render(l.Title)
}

// Toggle is a switch. Its on state is reported as selected.
type Toggle struct {
	base
	on      bool
	enabled bool
	focused bool

	Glyph style.Glyph
	Color lipgloss.TerminalColor
}

func NewToggle(title string) *Toggle {
	return &Toggle{base: newBase(title), enabled: true}
}

func (t *Toggle) Kind() string { return "toggle" }

func (t *Toggle) IsSelected() bool { return t.on }
func (t *Toggle) IsEnabled() bool  { return t.enabled }
func (t *Toggle) IsFocused() bool  { return t.focused }

func (t *Toggle) SetSelected(v bool) { t.on = v }
func (t *Toggle) SetEnabled(v bool)  { t.enabled = v }
func (t *Toggle) SetFocused(v bool)  { t.focused = v }

func (t *Toggle) Render() string {
	return lipgloss.NewStyle().Foreground(colorOrNone(t.Color)).Render(withGlyph(t.Glyph, t.Title))
}

// ListItem is a row in a list. It cannot be disabled.
type ListItem struct {
	base
	highlighted bool
	selected    bool
	focused     bool

	TextColor  lipgloss.TerminalColor
	Background lipgloss.TerminalColor
	Marker     style.Glyph
}

func NewListItem(title string) *ListItem {
	return &ListItem{base: newBase(title)}
}

func (i *ListItem) Kind() string { return "list-item" }

func (i *ListItem) IsHighlighted() bool { return i.highlighted }
func (i *ListItem) IsSelected() bool    { return i.selected }
func (i *ListItem) IsFocused() bool     { return i.focused }

func (i *ListItem) SetHighlighted(v bool) { i.highlighted = v }
func (i *ListItem) SetSelected(v bool)    { i.selected = v }
func (i *ListItem) SetFocused(v bool)     { i.focused = v }

func (i *ListItem) Render() string {
	return lipgloss.NewStyle().
		Foreground(colorOrNone(i.TextColor)).
		Background(colorOrNone(i.Background)).
		Render(withGlyph(i.Marker, i.Title))
}

// Icon is a glyph that can only be highlighted.
type Icon struct {
	base
	highlighted bool

	Glyph style.Glyph
	Color lipgloss.TerminalColor
}

func NewIcon(title string) *Icon {
	return &Icon{base: newBase(title)}
}

func (i *Icon) Kind() string { return "icon" }

func (i *Icon) IsHighlighted() bool { return i.highlighted }

func (i *Icon) SetHighlighted(v bool) { i.highlighted = v }

func (i *Icon) Render() string {
	text := string(i.Glyph)
	if text == "" {
		text = i.Title
	}
	return lipgloss.NewStyle().Foreground(colorOrNone(i.Color)).Render(text)
}
