// Package widgets provides terminal controls with native style properties.
//
// Widgets only store and render what they are given. The hooks package
// decides which values they receive.
package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/opencode-ai/statestyle/internal/style"
)

// Widget is a renderable control.
type Widget interface {
	WidgetID() uuid.UUID
	Caption() string
	Kind() string
	Render() string
}

// base carries identity and the title shared by all widgets.
type base struct {
	id    uuid.UUID
	Title string
}

func newBase(title string) base {
	return base{id: uuid.New(), Title: title}
}

func (b base) WidgetID() uuid.UUID {
	return b.id
}

func (b base) Caption() string {
	return b.Title
}

// stateSlots stores one value per state, like a native control that keeps
// a table of per-state appearances.
type stateSlots[V any] struct {
	values map[style.State]V
}

func (s *stateSlots[V]) set(v V, state style.State) {
	if s.values == nil {
		s.values = make(map[style.State]V, len(style.States))
	}
	s.values[state] = v
}

func (s *stateSlots[V]) clear() {
	clear(s.values)
}

// lookup returns the slot for state, or the normal slot when state has none.
func (s *stateSlots[V]) lookup(state style.State) (V, bool) {
	if v, ok := s.values[state]; ok {
		return v, true
	}
	v, ok := s.values[style.Normal]
	return v, ok
}

func colorOrNone(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	return c
}

func withGlyph(g style.Glyph, text string) string {
	if g == "" {
		return text
	}
	return string(g) + " " + text
}
