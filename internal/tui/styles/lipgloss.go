// Package styles holds the lipgloss styles of the preview chrome.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    theme.Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Cursor   lipgloss.Style
	Warning  lipgloss.Style
	Badge    lipgloss.Style
	BadgeOff lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(theme.DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(t theme.Theme) Styles {
	tokens := t.Tokens

	return Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Background)).Background(lipgloss.Color(tokens.Accent)).Padding(0, 1),
		BadgeOff: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Padding(0, 1),
	}
}
