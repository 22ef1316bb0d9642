package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/statestyle/internal/hooks"
	"github.com/opencode-ai/statestyle/internal/style"
)

func TestButtonSlotsFollowState(t *testing.T) {
	b := NewButton("OK")
	b.SetTitleColor(lipgloss.Color("1"), style.Normal)
	b.SetTitleColor(lipgloss.Color("2"), style.Highlighted)
	b.SetGlyph("o", style.Normal)

	if got := b.CurrentState(); got != style.Normal {
		t.Fatalf("CurrentState() = %s, want normal", got)
	}

	b.SetHighlighted(true)
	b.SetEnabled(false)
	if got := b.CurrentState(); got != style.Highlighted {
		t.Fatalf("CurrentState() = %s, want highlighted", got)
	}
	if got := b.TitleColor(b.CurrentState()); got != lipgloss.Color("2") {
		t.Errorf("TitleColor(highlighted) = %v, want 2", got)
	}
	if got := b.TitleColor(style.Disabled); got != lipgloss.Color("1") {
		t.Errorf("TitleColor(disabled) = %v, want normal fallback", got)
	}
	if got := b.Glyph(style.Selected); got != "o" {
		t.Errorf("Glyph(selected) = %q, want normal fallback", got)
	}
}

func TestButtonWithoutSlotsRendersPlain(t *testing.T) {
	b := NewButton("Plain")
	if _, ok := b.TitleColor(style.Normal).(lipgloss.NoColor); !ok {
		t.Errorf("expected NoColor for unset title color")
	}
	result := b.Render()
	if !strings.Contains(result, "Plain") {
		t.Errorf("Expected title in output, got: %s", result)
	}
}

func TestCapabilitySubsets(t *testing.T) {
	tests := []struct {
		name   string
		widget Widget
		want   style.StateSet
	}{
		{"button", NewButton("b"), style.NewStateSet(style.States...)},
		{"label", NewLabel("l"), style.NewStateSet(style.Normal, style.Highlighted, style.Disabled)},
		{"toggle", NewToggle("t"), style.NewStateSet(style.Normal, style.Selected, style.Disabled, style.Focused)},
		{"list item", NewListItem("i"), style.NewStateSet(style.Normal, style.Highlighted, style.Selected, style.Focused)},
		{"icon", NewIcon("i"), style.NewStateSet(style.Normal, style.Highlighted)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := style.Capabilities(tt.widget); got != tt.want {
				t.Errorf("Capabilities() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderIncludesGlyphs(t *testing.T) {
	toggle := NewToggle("Wi-Fi")
	toggle.Glyph = "[x]"
	if result := toggle.Render(); !strings.Contains(result, "[x] Wi-Fi") {
		t.Errorf("Expected glyph and title, got: %s", result)
	}

	item := NewListItem("row")
	item.Marker = "›"
	if result := item.Render(); !strings.Contains(result, "› row") {
		t.Errorf("Expected marker and title, got: %s", result)
	}

	icon := NewIcon("fallback")
	if result := icon.Render(); !strings.Contains(result, "fallback") {
		t.Errorf("Expected title when no glyph is set, got: %s", result)
	}
}

func TestWidgetIDsAreUnique(t *testing.T) {
	a, b := NewLabel("a"), NewLabel("a")
	if a.WidgetID() == b.WidgetID() {
		t.Fatal("expected distinct widget ids")
	}
}

func TestRecustomizeDropsStaleSlots(t *testing.T) {
	type tc = lipgloss.TerminalColor
	b := NewButton("OK")
	hooks.Bind(ButtonTitleColor, style.ColorStyle(style.MustComposite[tc](style.Color("#FFFFFF"),
		style.WithHighlighted[tc](style.Color("#F0C674")),
	))).Apply(b, 0)
	hooks.Bind(ButtonGlyph, style.GlyphStyle(style.MustComposite[style.Glyph](style.Icon("o"),
		style.WithHighlighted[style.Glyph](style.Icon("*")),
	))).Apply(b, 0)
	if got := b.TitleColor(style.Highlighted); got != lipgloss.Color("#F0C674") {
		t.Fatalf("TitleColor(highlighted) = %v, want #F0C674", got)
	}

	hooks.Bind(ButtonTitleColor, style.ColorStyle(style.MustComposite[tc](style.Color("#000000")))).Apply(b, 0)
	hooks.Bind(ButtonGlyph, style.GlyphStyle(style.Icon("-"))).Apply(b, 0)
	if got := b.TitleColor(style.Highlighted); got != lipgloss.Color("#000000") {
		t.Errorf("TitleColor(highlighted) = %v, want normal #000000", got)
	}
	if got := b.Glyph(style.Highlighted); got != "-" {
		t.Errorf("Glyph(highlighted) = %q, want normal glyph", got)
	}
}
