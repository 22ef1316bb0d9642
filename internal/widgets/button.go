package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/style"
)

// Button reports every interaction state. Its title color and glyph are kept
// per state; the control shows the slot of its own current state.
type Button struct {
	base
	highlighted bool
	selected    bool
	enabled     bool
	focused     bool

	titleColors stateSlots[lipgloss.TerminalColor]
	glyphs      stateSlots[style.Glyph]

	Background  lipgloss.TerminalColor
	BorderColor lipgloss.TerminalColor
}

// NewButton returns an enabled button.
func NewButton(title string) *Button {
	return &Button{base: newBase(title), enabled: true}
}

func (b *Button) Kind() string { return "button" }

func (b *Button) IsHighlighted() bool { return b.highlighted }
func (b *Button) IsSelected() bool    { return b.selected }
func (b *Button) IsEnabled() bool     { return b.enabled }
func (b *Button) IsFocused() bool     { return b.focused }

func (b *Button) SetHighlighted(v bool) { b.highlighted = v }
func (b *Button) SetSelected(v bool)    { b.selected = v }
func (b *Button) SetEnabled(v bool)     { b.enabled = v }
func (b *Button) SetFocused(v bool)     { b.focused = v }

// SetTitleColor stores the title color used while the button is in state.
func (b *Button) SetTitleColor(c lipgloss.TerminalColor, state style.State) {
	b.titleColors.set(c, state)
}

// SetGlyph stores the glyph used while the button is in state.
func (b *Button) SetGlyph(g style.Glyph, state style.State) {
	b.glyphs.set(g, state)
}

// ClearTitleColors drops every stored title color.
func (b *Button) ClearTitleColors() { b.titleColors.clear() }

// ClearGlyphs drops every stored glyph.
func (b *Button) ClearGlyphs() { b.glyphs.clear() }

// TitleColor returns the stored color for state, falling back to normal.
func (b *Button) TitleColor(state style.State) lipgloss.TerminalColor {
	c, _ := b.titleColors.lookup(state)
	return colorOrNone(c)
}

// Glyph returns the stored glyph for state, falling back to normal.
func (b *Button) Glyph(state style.State) style.Glyph {
	g, _ := b.glyphs.lookup(state)
	return g
}

// CurrentState is the state whose slots the button displays.
func (b *Button) CurrentState() style.State {
	state, _ := style.MatchState(b, 0)
	return state
}

func (b *Button) Render() string {
	state := b.CurrentState()
	return lipgloss.NewStyle().
		Foreground(b.TitleColor(state)).
		Background(colorOrNone(b.Background)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOrNone(b.BorderColor)).
		Padding(0, 1).
		Render(withGlyph(b.Glyph(state), b.Title))
}
