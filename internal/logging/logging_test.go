package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "debug", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = Init(Options{}) })

	logger := Component("hooks")
	logger.Debug().Str("hook", "button.title").Msg("applied")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hooks", entry["component"])
	require.Equal(t, "button.title", entry["hook"])
	require.Equal(t, "debug", entry["level"])
}

func TestInitRejectsBadInput(t *testing.T) {
	require.Error(t, Init(Options{Level: "loud"}))
	require.Error(t, Init(Options{Format: "xml"}))
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Level: "warn", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = Init(Options{}) })

	logger := Component("test")
	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())
}
