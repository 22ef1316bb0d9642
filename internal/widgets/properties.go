package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/hooks"
	"github.com/opencode-ai/statestyle/internal/style"
)

// Properties that hooks can bind styles to.
var (
	ButtonTitleColor = hooks.PerState("button.title", (*Button).SetTitleColor).
		WithReset((*Button).ClearTitleColors)
	ButtonGlyph = hooks.PerState("button.glyph", (*Button).SetGlyph).
		WithReset((*Button).ClearGlyphs)
	ButtonBackground = hooks.Single("button.background", func(b *Button, c lipgloss.TerminalColor) {
		b.Background = c
	})
	ButtonBorder = hooks.Single("button.border", func(b *Button, c lipgloss.TerminalColor) {
		b.BorderColor = c
	})

	LabelText = hooks.Single("label.text", func(l *Label, c lipgloss.TerminalColor) {
		l.TextColor = c
	})

	ToggleGlyph = hooks.Single("toggle.glyph", func(t *Toggle, g style.Glyph) {
		t.Glyph = g
	})
	ToggleColor = hooks.Single("toggle.color", func(t *Toggle, c lipgloss.TerminalColor) {
		t.Color = c
	})

	ListText = hooks.Single("list.text", func(i *ListItem, c lipgloss.TerminalColor) {
		i.TextColor = c
	})
	ListBackground = hooks.Single("list.background", func(i *ListItem, c lipgloss.TerminalColor) {
		i.Background = c
	})
	ListMarker = hooks.Single("list.marker", func(i *ListItem, g style.Glyph) {
		i.Marker = g
	})

	IconColor = hooks.Single("icon.color", func(i *Icon, c lipgloss.TerminalColor) {
		i.Color = c
	})
	IconGlyph = hooks.Single("icon.glyph", func(i *Icon, g style.Glyph) {
		i.Glyph = g
	})
)
