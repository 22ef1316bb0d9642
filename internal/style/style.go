// Package style resolves state-dependent styles for interactive controls.
//
// A Style yields a value for the normal state. A Group adds optional
// overrides for the highlighted, selected, disabled and focused states. The
// resolver picks one value for a control's live state; the appliers push the
// result into a property setter.
package style

import "errors"

// ErrMissingNormal is returned when a composite is built without a normal style.
var ErrMissingNormal = errors.New("composite style requires a normal style")

// Optional holds a value or nothing. The zero value is absent.
type Optional[V any] struct {
	value V
	set   bool
}

// Some wraps a present value.
func Some[V any](v V) Optional[V] {
	return Optional[V]{value: v, set: true}
}

// None returns the absent value.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// Get returns the value and whether it is present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.set
}

func (o Optional[V]) IsSet() bool {
	return o.set
}

// Or returns the value if present, otherwise fallback.
func (o Optional[V]) Or(fallback V) V {
	if o.set {
		return o.value
	}
	return fallback
}

// Style produces the value used in the normal state.
type Style[V any] interface {
	Normal() V
}

// Group is a Style with optional per-state overrides. An absent override
// means the state inherits Normal.
type Group[V any] interface {
	Style[V]
	Highlighted() Optional[V]
	Selected() Optional[V]
	Disabled() Optional[V]
	Focused() Optional[V]
}

// AsGroup narrows a style to its group form when it has one.
func AsGroup[V any](s Style[V]) (Group[V], bool) {
	g, ok := s.(Group[V])
	return g, ok
}

// OverrideFor returns the override a group declares for state. Normal is
// always present.
func OverrideFor[V any](g Group[V], s State) Optional[V] {
	switch s {
	case Highlighted:
		return g.Highlighted()
	case Selected:
		return g.Selected()
	case Disabled:
		return g.Disabled()
	case Focused:
		return g.Focused()
	default:
		return Some(g.Normal())
	}
}

// Literal is a plain style with a fixed value.
type Literal[V any] struct {
	value V
}

// Value returns a plain style yielding v.
func Value[V any](v V) Literal[V] {
	return Literal[V]{value: v}
}

func (l Literal[V]) Normal() V {
	return l.value
}

// lifted presents a plain style as a group with no overrides.
type lifted[V any] struct {
	Style[V]
}

// Lift returns s in group form. If s already is a group it is returned as is.
func Lift[V any](s Style[V]) Group[V] {
	if g, ok := AsGroup(s); ok {
		return g
	}
	return lifted[V]{Style: s}
}

func (lifted[V]) Highlighted() Optional[V] { return None[V]() }
func (lifted[V]) Selected() Optional[V]    { return None[V]() }
func (lifted[V]) Disabled() Optional[V]    { return None[V]() }
func (lifted[V]) Focused() Optional[V]     { return None[V]() }

// Composite is a group assembled from one style per state. Each slot other
// than normal may be empty. A slot's value is the Normal of its style, so any
// style or composite can fill any slot.
type Composite[V any] struct {
	normal      Style[V]
	highlighted Style[V]
	selected    Style[V]
	disabled    Style[V]
	focused     Style[V]
}

// CompositeOption fills an optional slot of a composite.
type CompositeOption[V any] func(*Composite[V])

func WithHighlighted[V any](s Style[V]) CompositeOption[V] {
	return func(c *Composite[V]) { c.highlighted = s }
}

func WithSelected[V any](s Style[V]) CompositeOption[V] {
	return func(c *Composite[V]) { c.selected = s }
}

func WithDisabled[V any](s Style[V]) CompositeOption[V] {
	return func(c *Composite[V]) { c.disabled = s }
}

func WithFocused[V any](s Style[V]) CompositeOption[V] {
	return func(c *Composite[V]) { c.focused = s }
}

// NewComposite builds a composite group. The normal style is mandatory.
func NewComposite[V any](normal Style[V], opts ...CompositeOption[V]) (*Composite[V], error) {
	if isNil(normal) {
		return nil, ErrMissingNormal
	}
	c := &Composite[V]{normal: normal}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// MustComposite is like NewComposite but panics on a missing normal style.
func MustComposite[V any](normal Style[V], opts ...CompositeOption[V]) *Composite[V] {
	c, err := NewComposite(normal, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Composite[V]) Normal() V {
	return c.normal.Normal()
}

func (c *Composite[V]) Highlighted() Optional[V] { return slot(c.highlighted) }
func (c *Composite[V]) Selected() Optional[V]    { return slot(c.selected) }
func (c *Composite[V]) Disabled() Optional[V]    { return slot(c.disabled) }
func (c *Composite[V]) Focused() Optional[V]     { return slot(c.focused) }

func slot[V any](s Style[V]) Optional[V] {
	if isNil(s) {
		return None[V]()
	}
	return Some(s.Normal())
}

// isNil catches both a nil interface and a typed nil composite pointer.
func isNil[V any](s Style[V]) bool {
	if s == nil {
		return true
	}
	if c, ok := s.(*Composite[V]); ok && c == nil {
		return true
	}
	return false
}
