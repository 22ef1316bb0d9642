package theme

import (
	"github.com/opencode-ai/statestyle/internal/hooks"
	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/widgets"
)

// Customizers holds one customizer per widget type, bound to a sheet.
type Customizers struct {
	Button   *hooks.Customizer[*widgets.Button]
	Label    *hooks.Customizer[*widgets.Label]
	Toggle   *hooks.Customizer[*widgets.Toggle]
	ListItem *hooks.Customizer[*widgets.ListItem]
	Icon     *hooks.Customizer[*widgets.Icon]
}

// Bind builds the customizers for every widget type from the sheet entries.
func (s *Sheet) Bind() Customizers {
	return Customizers{
		Button: hooks.NewCustomizer(
			hooks.Bind(widgets.ButtonTitleColor, s.colors["button.title"]),
			hooks.Bind(widgets.ButtonGlyph, s.glyphs["button.glyph"]),
			hooks.Bind(widgets.ButtonBackground, s.colors["button.background"]),
			hooks.Bind(widgets.ButtonBorder, s.colors["button.border"]),
		),
		Label: hooks.NewCustomizer(
			hooks.Bind(widgets.LabelText, s.colors["label.text"]),
		),
		Toggle: hooks.NewCustomizer(
			hooks.Bind(widgets.ToggleGlyph, s.glyphs["toggle.glyph"]),
			hooks.Bind(widgets.ToggleColor, s.colors["toggle.color"]),
		),
		ListItem: hooks.NewCustomizer(
			hooks.Bind(widgets.ListText, s.colors["list.text"]),
			hooks.Bind(widgets.ListBackground, s.colors["list.background"]),
			hooks.Bind(widgets.ListMarker, s.glyphs["list.marker"], style.Highlighted),
		),
		Icon: hooks.NewCustomizer(
			hooks.Bind(widgets.IconColor, s.colors["icon.color"]),
			hooks.Bind(widgets.IconGlyph, s.glyphs["icon.glyph"]),
		),
	}
}

// Customize refreshes w with the matching customizer. Unknown widget types
// are left untouched.
func (c Customizers) Customize(w widgets.Widget, exclude style.StateSet) {
	switch v := w.(type) {
	case *widgets.Button:
		c.Button.CustomizeExcluding(v, exclude)
	case *widgets.Label:
		c.Label.CustomizeExcluding(v, exclude)
	case *widgets.Toggle:
		c.Toggle.CustomizeExcluding(v, exclude)
	case *widgets.ListItem:
		c.ListItem.CustomizeExcluding(v, exclude)
	case *widgets.Icon:
		c.Icon.CustomizeExcluding(v, exclude)
	}
}
