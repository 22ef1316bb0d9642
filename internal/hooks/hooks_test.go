package hooks

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/opencode-ai/statestyle/internal/logging"
	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/stretchr/testify/require"
)

type fakeControl struct {
	highlighted bool
	enabled     bool

	tint  string
	table []string
}

func (f *fakeControl) IsHighlighted() bool { return f.highlighted }
func (f *fakeControl) IsEnabled() bool     { return f.enabled }

var (
	tintProp  = Single("tint", func(f *fakeControl, v string) { f.tint = v })
	tableProp = PerState("table", func(f *fakeControl, v string, s style.State) {
		f.table = append(f.table, s.String()+"="+v)
	})
)

func group() style.Style[string] {
	return style.MustComposite[string](style.Value("base"),
		style.WithHighlighted[string](style.Value("hot")),
		style.WithDisabled[string](style.Value("dim")),
	)
}

func TestSingleHookResolvesLiveState(t *testing.T) {
	ctl := &fakeControl{enabled: true}
	hook := Bind(tintProp, group())
	require.Equal(t, "tint", hook.Name())
	require.Equal(t, KindSingle, hook.Kind())

	hook.Apply(ctl, 0)
	require.Equal(t, "base", ctl.tint)

	ctl.enabled = false
	hook.Apply(ctl, 0)
	require.Equal(t, "dim", ctl.tint)

	ctl.highlighted = true
	hook.Apply(ctl, 0)
	require.Equal(t, "hot", ctl.tint)

	hook.Apply(ctl, style.NewStateSet(style.Highlighted))
	require.Equal(t, "dim", ctl.tint)
}

func TestBindExclusionsCombineWithCallSite(t *testing.T) {
	ctl := &fakeControl{highlighted: true, enabled: false}
	hook := Bind(tintProp, group(), style.Highlighted)

	hook.Apply(ctl, 0)
	require.Equal(t, "dim", ctl.tint)

	hook.Apply(ctl, style.NewStateSet(style.Disabled))
	require.Equal(t, "base", ctl.tint)
}

func TestMultiHookPushesEveryPresentState(t *testing.T) {
	ctl := &fakeControl{highlighted: true}
	hook := Bind(tableProp, group())
	require.Equal(t, KindMulti, hook.Kind())

	hook.Apply(ctl, style.NewStateSet(style.Highlighted))
	want := []string{"normal=base", "highlighted=hot", "disabled=dim"}
	require.Equal(t, want, ctl.table)

	ctl.table = nil
	hook.Apply(ctl, 0)
	require.Equal(t, want, ctl.table)
}

func TestCustomizerRunsHooksInOrder(t *testing.T) {
	ctl := &fakeControl{enabled: true}
	c := NewCustomizer(Bind(tableProp, style.Style[string](style.Value("only"))))
	c.Add(Bind(tintProp, group()))

	require.Equal(t, []string{"table", "tint"}, c.Names())

	c.Customize(ctl)
	require.Equal(t, []string{"normal=only"}, ctl.table)
	require.Equal(t, "base", ctl.tint)

	ctl.highlighted = true
	c.CustomizeExcluding(ctl, style.NewStateSet(style.Highlighted))
	require.Equal(t, "base", ctl.tint)
}

func TestNilSettersAreIgnored(t *testing.T) {
	ctl := &fakeControl{}
	require.NotPanics(t, func() {
		Bind(Single[*fakeControl, string]("nil", nil), group()).Apply(ctl, 0)
		Bind(PerState[*fakeControl, string]("nil", nil), group()).Apply(ctl, 0)
	})
}

func TestResetRunsBeforeEveryMultiPass(t *testing.T) {
	ctl := &fakeControl{}
	prop := tableProp.WithReset(func(f *fakeControl) { f.table = nil })

	Bind(prop, group()).Apply(ctl, 0)
	require.Equal(t, []string{"normal=base", "highlighted=hot", "disabled=dim"}, ctl.table)

	Bind(prop, style.Style[string](style.Value("plain"))).Apply(ctl, 0)
	require.Equal(t, []string{"normal=plain"}, ctl.table)
}

func TestCustomizerLogsStatePerHook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logging.Init(logging.Options{Level: "debug", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = logging.Init(logging.Options{}) })

	ctl := &fakeControl{highlighted: true}
	c := NewCustomizer(
		Bind(tintProp, group()),
		Bind(tintProp, group(), style.Highlighted),
		Bind(tableProp, group()),
	)
	c.CustomizeExcluding(ctl, style.NewStateSet(style.Focused))

	var states, excludes []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		states = append(states, entry["state"].(string))
		excludes = append(excludes, entry["exclude"].(string))
	}
	require.Equal(t, []string{"highlighted", "disabled", "highlighted"}, states)
	require.Equal(t, []string{"focused", "highlighted,focused", "none"}, excludes)
}
