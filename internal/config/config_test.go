package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/opencode-ai/statestyle/internal/theme"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logging:
  level: debug
  format: json
tui:
  theme: high-contrast
  exclude: [focused]
styles:
  button.title:
    normal: "#101010"
    disabled: "#202020"
  toggle.glyph:
    normal: "off"
    selected: "on"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "high-contrast", cfg.TUI.Theme)
	require.Equal(t, theme.GroupSpec{Normal: "#101010", Disabled: "#202020"}, cfg.Styles["button.title"])

	exclude, err := cfg.ExcludeSet()
	require.NoError(t, err)
	require.Equal(t, style.NewStateSet(style.Focused), exclude)

	sheet, err := cfg.Sheet()
	require.NoError(t, err)
	got, err := sheet.ResolveString("button.title", style.Flags{}, 0)
	require.NoError(t, err)
	require.Equal(t, "#202020", got)
	require.Equal(t, "high-contrast", sheet.Theme.Name)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "default", cfg.TUI.Theme)
	require.Empty(t, cfg.File)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestEnvAndFlagsOverride(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("STATESTYLE_TUI_THEME", "default")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "default", cfg.TUI.Theme)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "warn", "")
	flags.String("theme", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	cfg, err = Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Logging.Level)
	require.Equal(t, "default", cfg.TUI.Theme, "unset flag must not override env")
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad theme", func(c *Config) { c.TUI.Theme = "neon" }},
		{"bad exclusion", func(c *Config) { c.TUI.Exclude = []string{"hover"} }},
		{"missing normal", func(c *Config) {
			c.Styles["label.text"] = theme.GroupSpec{Disabled: "#000000"}
		}},
		{"unknown style", func(c *Config) {
			c.Styles["slider.track"] = theme.GroupSpec{Normal: "#000000"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestMissingNormalIsReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Styles["label.text"] = theme.GroupSpec{Highlighted: "#FFFFFF"}
	_, err := cfg.Sheet()
	require.ErrorIs(t, err, style.ErrMissingNormal)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
