// Package hooks binds styles to control properties.
//
// A Property describes how one native property of a control type is written.
// Binding a property to a style yields a Hook; a Customizer runs a list of
// hooks against a control every time its appearance must be refreshed.
package hooks

import (
	"github.com/opencode-ai/statestyle/internal/logging"
	"github.com/opencode-ai/statestyle/internal/style"
	"github.com/rs/zerolog"
)

// Kind tells whether a property holds one active value or one value per state.
type Kind int

const (
	KindSingle Kind = iota
	KindMulti
)

func (k Kind) String() string {
	if k == KindMulti {
		return "multi"
	}
	return "single"
}

// Property writes values of type V into controls of type W.
type Property[W any, V any] struct {
	name     string
	kind     Kind
	set      func(W, V)
	setState func(W, V, style.State)
	reset    func(W)
}

// Single declares a property that holds exactly one active value.
func Single[W any, V any](name string, set func(W, V)) Property[W, V] {
	return Property[W, V]{name: name, kind: KindSingle, set: set}
}

// PerState declares a property the control stores once per state.
func PerState[W any, V any](name string, set func(W, V, style.State)) Property[W, V] {
	return Property[W, V]{name: name, kind: KindMulti, setState: set}
}

// WithReset returns a copy of p that calls reset before every multi-value
// pass, so states the style no longer overrides drop back to normal.
func (p Property[W, V]) WithReset(reset func(W)) Property[W, V] {
	p.reset = reset
	return p
}

func (p Property[W, V]) Name() string { return p.name }
func (p Property[W, V]) Kind() Kind   { return p.kind }

// Hook applies one style to one property of a control.
type Hook[W any] interface {
	Name() string
	Kind() Kind
	// Exclude reports the states the hook always treats as normal.
	Exclude() style.StateSet
	Apply(target W, exclude style.StateSet)
}

type binding[W any, V any] struct {
	prop    Property[W, V]
	style   style.Style[V]
	exclude style.StateSet
}

// Bind pairs a property with a style. States listed in exclude are treated as
// normal whenever the hook runs.
func Bind[W any, V any](prop Property[W, V], s style.Style[V], exclude ...style.State) Hook[W] {
	return binding[W, V]{prop: prop, style: s, exclude: style.NewStateSet(exclude...)}
}

func (b binding[W, V]) Name() string { return b.prop.name }
func (b binding[W, V]) Kind() Kind   { return b.prop.kind }

func (b binding[W, V]) Exclude() style.StateSet { return b.exclude }

func (b binding[W, V]) Apply(target W, exclude style.StateSet) {
	switch b.prop.kind {
	case KindMulti:
		if b.prop.setState == nil {
			return
		}
		if b.prop.reset != nil {
			b.prop.reset(target)
		}
		style.ApplyMulti(b.style, func(v V, s style.State) {
			b.prop.setState(target, v, s)
		})
	default:
		if b.prop.set == nil {
			return
		}
		style.ApplySingle(b.style, target, b.exclude|exclude, func(v V) {
			b.prop.set(target, v)
		})
	}
}

// Customizer runs hooks against controls of type W in declaration order.
type Customizer[W any] struct {
	hooks  []Hook[W]
	logger zerolog.Logger
}

// NewCustomizer returns a customizer running the given hooks.
func NewCustomizer[W any](hooks ...Hook[W]) *Customizer[W] {
	return &Customizer[W]{
		hooks:  hooks,
		logger: logging.Component("hooks"),
	}
}

// Add appends hooks.
func (c *Customizer[W]) Add(hooks ...Hook[W]) *Customizer[W] {
	c.hooks = append(c.hooks, hooks...)
	return c
}

// Names lists the hook names in order.
func (c *Customizer[W]) Names() []string {
	names := make([]string, 0, len(c.hooks))
	for _, h := range c.hooks {
		names = append(names, h.Name())
	}
	return names
}

// Customize applies every hook to target.
func (c *Customizer[W]) Customize(target W) {
	c.CustomizeExcluding(target, 0)
}

// CustomizeExcluding applies every hook to target, treating the states in
// exclude as normal in addition to each hook's own exclusions.
func (c *Customizer[W]) CustomizeExcluding(target W, exclude style.StateSet) {
	for _, h := range c.hooks {
		h.Apply(target, exclude)
		effective := h.Exclude() | exclude
		if h.Kind() == KindMulti {
			// The control picks its own slot, so no exclusion reaches it.
			effective = 0
		}
		state, matched := style.MatchState(target, effective)
		if !matched {
			state = style.Normal
		}
		c.logger.Debug().
			Str("hook", h.Name()).
			Stringer("kind", h.Kind()).
			Stringer("state", state).
			Stringer("exclude", effective).
			Msg("hook applied")
	}
}
