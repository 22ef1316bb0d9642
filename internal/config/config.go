// Package config loads statestyle settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "STATESTYLE"
	fileName  = "config"

	// keyDelimiter keeps dotted style names such as "button.title" intact
	// as single map keys.
	keyDelimiter = "::"
)

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig              `mapstructure:"logging"`
	TUI     TUIConfig                  `mapstructure:"tui"`
	Styles  map[string]theme.GroupSpec `mapstructure:"styles"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TUIConfig controls the preview.
type TUIConfig struct {
	Theme   string   `mapstructure:"theme"`
	Exclude []string `mapstructure:"exclude"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		TUI:     TUIConfig{Theme: theme.DefaultTheme.Name},
		Styles:  map[string]theme.GroupSpec{},
	}
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":  "logging::level",
	"log-format": "logging::format",
	"theme":      "tui::theme",
	"exclude":    "tui::exclude",
}

// Load reads configuration. An explicit path must exist; otherwise the
// default search path is tried and a missing file is not an error. Flags
// that were set on the command line take precedence over everything else.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	defaults := DefaultConfig()
	v.SetDefault("logging::level", defaults.Logging.Level)
	v.SetDefault("logging::format", defaults.Logging.Format)
	v.SetDefault("tui::theme", defaults.TUI.Theme)
	v.SetDefault("tui::exclude", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Styles == nil {
		cfg.Styles = map[string]theme.GroupSpec{}
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

func searchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "statestyle"))
	}
	return paths
}

// Validate checks every value that later stages would otherwise reject.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported format %q", c.Logging.Format)
	}
	if _, err := theme.Lookup(c.TUI.Theme); err != nil {
		return fmt.Errorf("tui.theme: %w", err)
	}
	if _, err := c.ExcludeSet(); err != nil {
		return fmt.Errorf("tui.exclude: %w", err)
	}
	_, err := c.Sheet()
	return err
}

// ExcludeSet parses the configured exclusion list.
func (c *Config) ExcludeSet() (style.StateSet, error) {
	return style.ParseStateSet(strings.Join(c.TUI.Exclude, ","))
}

// Sheet builds the style sheet for the configured theme with every style
// override applied, in name order.
func (c *Config) Sheet() (*theme.Sheet, error) {
	t, err := theme.Lookup(c.TUI.Theme)
	if err != nil {
		return nil, err
	}
	sheet := theme.NewSheet(t)

	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := sheet.Override(name, c.Styles[name]); err != nil {
			return nil, fmt.Errorf("styles.%s: %w", name, err)
		}
	}
	return sheet, nil
}
