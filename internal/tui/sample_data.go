package tui

import "github.com/opencode-ai/statestyle/internal/widgets"

// sampleWidgets returns one of every widget, some with preset state.
func sampleWidgets() []widgets.Widget {
	save := widgets.NewButton("Save")

	remove := widgets.NewButton("Delete")
	remove.SetEnabled(false)

	hint := widgets.NewLabel("Unsaved changes")

	sync := widgets.NewToggle("Sync")
	sync.SetSelected(true)

	row := widgets.NewListItem("notes.md")
	row.SetSelected(true)

	info := widgets.NewIcon("info")

	return []widgets.Widget{save, remove, hint, sync, row, info}
}
