package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/tui/styles"
	"github.com/opencode-ai/statestyle/internal/widgets"
)

const maxTitleLength = 18

// WidgetCard contains data needed to render a widget card.
type WidgetCard struct {
	Widget  widgets.Widget
	Exclude style.StateSet
	Focused bool
}

// RenderWidgetCard renders the widget with its kind, live states and the
// state whose single-value styles won. Controls that keep per-state slots get
// a second line when the slot they show differs.
func RenderWidgetCard(styleSet styles.Styles, card WidgetCard) string {
	if card.Widget == nil {
		return styleSet.Muted.Render("--")
	}

	header := styleSet.Accent.Render(card.Widget.Kind())
	if card.Focused {
		header = styleSet.Cursor.Render("> " + card.Widget.Kind())
	}

	flags := style.ReadFlags(card.Widget)
	caps := style.Capabilities(card.Widget)
	badges := RenderStateBadges(styleSet, flags, caps, card.Exclude)

	winner := "normal"
	if state, ok := style.MatchState(card.Widget, card.Exclude); ok {
		winner = state.String()
	}
	lines := []string{
		header,
		card.Widget.Render(),
		badges,
		styleSet.Muted.Render(fmt.Sprintf("wins: %s", winner)),
	}
	// Per-state slots are chosen by the control and ignore exclusions.
	if native, ok := card.Widget.(interface{ CurrentState() style.State }); ok {
		if shown := native.CurrentState().String(); shown != winner {
			lines = append(lines, styleSet.Muted.Render(fmt.Sprintf("slots: %s", shown)))
		}
	}

	content := strings.Join(lines, "\n")

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return cardStyle.Render(content)
}

func truncate(value string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// CardTitle shortens a widget title for tight layouts.
func CardTitle(title string) string {
	return truncate(strings.TrimSpace(title), maxTitleLength)
}
