// Package cli provides style resolution commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/widgets"
	"github.com/spf13/cobra"
)

var (
	resolveStates []string
	resolveWidget string
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringSliceVar(&resolveStates, "state", nil, "active states (highlighted, selected, disabled, focused)")
	resolveCmd.Flags().StringVar(&resolveWidget, "widget", "", "widget kind whose capabilities apply (button, label, toggle, list-item, icon)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <style>...",
	Short: "Resolve styles for a set of active states",
	Long: `Resolve the value each style yields for a control in the given states.

Without --widget the control reports every state. With --widget only the
states that widget kind can report are considered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		sheet, err := cfg.Sheet()
		if err != nil {
			return err
		}
		exclude, err := cfg.ExcludeSet()
		if err != nil {
			return err
		}
		active, err := style.ParseStateSet(strings.Join(resolveStates, ","))
		if err != nil {
			return err
		}
		target, err := buildTarget(resolveWidget, active)
		if err != nil {
			return err
		}

		winner := "normal"
		if state, ok := style.MatchState(target, exclude); ok {
			winner = state.String()
		}

		rows := make([][]string, 0, len(args))
		for _, name := range args {
			value, err := sheet.ResolveString(name, target, exclude)
			if err != nil {
				return err
			}
			rows = append(rows, []string{name, winner, value})
		}
		return writeTable(cmd.OutOrStdout(), []string{"STYLE", "STATE", "VALUE"}, rows)
	},
}

// buildTarget returns a control reporting the active states. A named widget
// kind only reports the states it supports.
func buildTarget(kind string, active style.StateSet) (any, error) {
	flags := style.Flags{
		Highlighted: active.Has(style.Highlighted),
		Selected:    active.Has(style.Selected),
		Enabled:     !active.Has(style.Disabled),
		Focused:     active.Has(style.Focused),
	}

	var w widgets.Widget
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "":
		return flags, nil
	case "button":
		w = widgets.NewButton(kind)
	case "label":
		w = widgets.NewLabel(kind)
	case "toggle":
		w = widgets.NewToggle(kind)
	case "list-item", "list":
		w = widgets.NewListItem(kind)
	case "icon":
		w = widgets.NewIcon(kind)
	default:
		return nil, fmt.Errorf("unknown widget kind %q", kind)
	}

	if h, ok := w.(interface{ SetHighlighted(bool) }); ok {
		h.SetHighlighted(flags.Highlighted)
	}
	if s, ok := w.(interface{ SetSelected(bool) }); ok {
		s.SetSelected(flags.Selected)
	}
	if e, ok := w.(interface{ SetEnabled(bool) }); ok {
		e.SetEnabled(flags.Enabled)
	}
	if f, ok := w.(interface{ SetFocused(bool) }); ok {
		f.SetFocused(flags.Focused)
	}
	return w, nil
}
