// Package components provides reusable preview components.
package components

import (
	"strings"

	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/tui/styles"
)

var badgeStates = []style.State{style.Highlighted, style.Selected, style.Disabled, style.Focused}

// RenderStateBadges renders one badge per state the widget can report.
// Active states are filled, excluded ones are struck with a marker.
func RenderStateBadges(styleSet styles.Styles, flags style.Flags, caps, exclude style.StateSet) string {
	active := flags.Active()
	parts := make([]string, 0, len(badgeStates))
	for _, s := range badgeStates {
		if !caps.Has(s) {
			continue
		}
		label := badgeLabel(s)
		if exclude.Has(s) {
			label += "~"
		}
		if active.Has(s) {
			parts = append(parts, styleSet.Badge.Render(label))
		} else {
			parts = append(parts, styleSet.BadgeOff.Render(label))
		}
	}
	if len(parts) == 0 {
		return styleSet.Muted.Render("no states")
	}
	return strings.Join(parts, " ")
}

func badgeLabel(s style.State) string {
	switch s {
	case style.Highlighted:
		return "HI"
	case style.Selected:
		return "SEL"
	case style.Disabled:
		return "OFF"
	case style.Focused:
		return "FOC"
	default:
		return strings.ToUpper(s.String())
	}
}
