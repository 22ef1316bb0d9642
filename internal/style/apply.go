package style

// SingleSetter receives the resolved value of a single-value property.
type SingleSetter[V any] func(V)

// MultiSetter receives one value per state for properties that store a
// value for every state.
type MultiSetter[V any] func(V, State)

// ApplySingle resolves s against target and hands the result to set.
func ApplySingle[V any](s Style[V], target any, exclude StateSet, set SingleSetter[V]) {
	if set == nil {
		return
	}
	set(ResolveSingle(s, target, exclude))
}

// ApplyMulti pushes the normal value and every present override to set.
// Absent overrides are skipped.
func ApplyMulti[V any](s Style[V], set MultiSetter[V]) {
	if set == nil {
		return
	}
	for _, sv := range ResolveAll(s) {
		set(sv.Value, sv.State)
	}
}
