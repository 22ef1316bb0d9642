package style

// StateValue pairs a value with the state slot it belongs to.
type StateValue[V any] struct {
	State State
	Value V
}

// MatchState returns the highest priority state that is active on target and
// not excluded. Priority is highlighted, selected, disabled, focused. It
// reports false when nothing matches.
func MatchState(target any, exclude StateSet) (State, bool) {
	if h, ok := AsHighlightable(target); ok && !exclude.Has(Highlighted) && h.IsHighlighted() {
		return Highlighted, true
	}
	if s, ok := AsSelectable(target); ok && !exclude.Has(Selected) && s.IsSelected() {
		return Selected, true
	}
	if e, ok := AsEnableable(target); ok && !exclude.Has(Disabled) && !e.IsEnabled() {
		return Disabled, true
	}
	if f, ok := AsFocusable(target); ok && !exclude.Has(Focused) && f.IsFocused() {
		return Focused, true
	}
	return Normal, false
}

// ResolveSingle picks the one value of s that applies to target.
//
// A plain style always yields Normal. For a group the first matching state
// wins; if that state's override is absent the result is Normal, even when a
// lower priority state also matches and has an override.
func ResolveSingle[V any](s Style[V], target any, exclude StateSet) V {
	g, ok := AsGroup(s)
	if !ok {
		return s.Normal()
	}
	state, matched := MatchState(target, exclude)
	if !matched {
		return g.Normal()
	}
	return OverrideFor(g, state).Or(g.Normal())
}

// multiOrder is the order values are pushed for multi-value properties.
var multiOrder = [...]State{Highlighted, Disabled, Selected, Focused}

// ResolveAll returns the normal value followed by every present override,
// in the order normal, highlighted, disabled, selected, focused.
func ResolveAll[V any](s Style[V]) []StateValue[V] {
	out := []StateValue[V]{{State: Normal, Value: s.Normal()}}
	g, ok := AsGroup(s)
	if !ok {
		return out
	}
	for _, state := range multiOrder {
		if v, ok := OverrideFor(g, state).Get(); ok {
			out = append(out, StateValue[V]{State: state, Value: v})
		}
	}
	return out
}
