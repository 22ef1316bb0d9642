// Package cli implements the statestyle command line.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/statestyle/internal/config"
	"github.com/opencode-ai/statestyle/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	nonInteractive bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "statestyle",
	Short:         "Resolve and preview state-dependent widget styles",
	Long:          "statestyle resolves which style variant applies to a control for its live interaction state and previews the result in the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := logging.Init(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cmd.ErrOrStderr(),
		}); err != nil {
			return err
		}
		appConfig = cfg

		logger := logging.Component("cli")
		logger.Debug().
			Str("config", cfg.File).
			Str("theme", cfg.TUI.Theme).
			Msg("configuration loaded")
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./config.yaml or ~/.config/statestyle/config.yaml)")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("theme", "", "theme name")
	flags.StringSlice("exclude", nil, "states to treat as normal (highlighted, selected, disabled, focused)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the TUI")
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

// Execute runs the root command.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		return 1
	}
	return 0
}
