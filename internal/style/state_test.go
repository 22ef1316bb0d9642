package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for _, s := range States {
		got, err := ParseState(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	got, err := ParseState("  Highlighted ")
	require.NoError(t, err)
	require.Equal(t, Highlighted, got)

	_, err = ParseState("pressed")
	require.ErrorIs(t, err, ErrUnknownState)
}

func TestStateSet(t *testing.T) {
	set := NewStateSet(Focused, Highlighted)
	require.True(t, set.Has(Highlighted))
	require.True(t, set.Has(Focused))
	require.False(t, set.Has(Selected))
	require.Equal(t, []State{Highlighted, Focused}, set.States())
	require.Equal(t, "highlighted,focused", set.String())

	set = set.Without(Highlighted)
	require.Equal(t, "focused", set.String())
	require.True(t, StateSet(0).IsEmpty())
	require.Equal(t, "none", StateSet(0).String())
}

func TestParseStateSet(t *testing.T) {
	set, err := ParseStateSet("selected, disabled,,")
	require.NoError(t, err)
	require.Equal(t, NewStateSet(Selected, Disabled), set)

	set, err = ParseStateSet("")
	require.NoError(t, err)
	require.True(t, set.IsEmpty())

	_, err = ParseStateSet("selected,hover")
	require.ErrorIs(t, err, ErrUnknownState)
}

func TestCapabilitiesAndReadFlags(t *testing.T) {
	require.Equal(t, NewStateSet(Normal, Selected), Capabilities(selectOnly{}))
	require.Equal(t, NewStateSet(States...), Capabilities(&control{}))

	flags := ReadFlags(selectOnly{selected: true})
	require.Equal(t, Flags{Selected: true, Enabled: true}, flags)
	require.Equal(t, NewStateSet(Selected), flags.Active())

	require.Equal(t, Flags{Enabled: true}, ReadFlags(bare{}))
	require.Equal(t, NewStateSet(Disabled, Focused), Flags{Focused: true}.Active())
}
