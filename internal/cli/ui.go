// Package cli provides TUI launch commands.
package cli

import (
	"os"

	"github.com/opencode-ai/statestyle/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"ui"},
	Short:   "Launch the live style preview",
	Long:    "Launch a terminal preview of every widget type, re-styled as their interaction states change.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "preview requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the resolve and states commands",
			NextStep: "statestyle resolve --help",
		}
	}

	cfg := GetConfig()
	sheet, err := cfg.Sheet()
	if err != nil {
		return err
	}
	exclude, err := cfg.ExcludeSet()
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Sheet:   sheet,
		Exclude: exclude,
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
