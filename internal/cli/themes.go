// Package cli provides theme listing.
package cli

import (
	"strings"

	"github.com/opencode-ai/statestyle/internal/theme"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		active := strings.ToLower(GetConfig().TUI.Theme)
		if active == "" {
			active = theme.DefaultTheme.Name
		}

		rows := make([][]string, 0, len(theme.Themes))
		for _, name := range theme.Names() {
			t := theme.Themes[name]
			rows = append(rows, []string{name, formatYesNo(name == active), t.Tokens.Accent, t.Tokens.Highlight})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "ACTIVE", "ACCENT", "HIGHLIGHT"}, rows)
	},
}
