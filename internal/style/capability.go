package style

// Highlightable is implemented by controls that report a pressed or hovered state.
type Highlightable interface {
	IsHighlighted() bool
}

// Selectable is implemented by controls that report a selection state.
type Selectable interface {
	IsSelected() bool
}

// Enableable is implemented by controls that can be disabled.
type Enableable interface {
	IsEnabled() bool
}

// Focusable is implemented by controls that can hold focus.
type Focusable interface {
	IsFocused() bool
}

func AsHighlightable(target any) (Highlightable, bool) {
	h, ok := target.(Highlightable)
	return h, ok
}

func AsSelectable(target any) (Selectable, bool) {
	s, ok := target.(Selectable)
	return s, ok
}

func AsEnableable(target any) (Enableable, bool) {
	e, ok := target.(Enableable)
	return e, ok
}

func AsFocusable(target any) (Focusable, bool) {
	f, ok := target.(Focusable)
	return f, ok
}

// Flags is a snapshot of a control's state flags. It implements every
// capability, so it can stand in for a control.
type Flags struct {
	Highlighted bool
	Selected    bool
	Enabled     bool
	Focused     bool
}

func (f Flags) IsHighlighted() bool { return f.Highlighted }
func (f Flags) IsSelected() bool    { return f.Selected }
func (f Flags) IsEnabled() bool     { return f.Enabled }
func (f Flags) IsFocused() bool     { return f.Focused }

// Active reports the states whose flags are currently true.
func (f Flags) Active() StateSet {
	var set StateSet
	if f.Highlighted {
		set = set.With(Highlighted)
	}
	if f.Selected {
		set = set.With(Selected)
	}
	if !f.Enabled {
		set = set.With(Disabled)
	}
	if f.Focused {
		set = set.With(Focused)
	}
	return set
}

// Capabilities lists the states a target can report. Normal is always included.
func Capabilities(target any) StateSet {
	set := NewStateSet(Normal)
	if _, ok := AsHighlightable(target); ok {
		set = set.With(Highlighted)
	}
	if _, ok := AsSelectable(target); ok {
		set = set.With(Selected)
	}
	if _, ok := AsEnableable(target); ok {
		set = set.With(Disabled)
	}
	if _, ok := AsFocusable(target); ok {
		set = set.With(Focused)
	}
	return set
}

// ReadFlags snapshots the flags of target. Missing capabilities read as a
// normal control: not highlighted, not selected, enabled, not focused.
func ReadFlags(target any) Flags {
	flags := Flags{Enabled: true}
	if h, ok := AsHighlightable(target); ok {
		flags.Highlighted = h.IsHighlighted()
	}
	if s, ok := AsSelectable(target); ok {
		flags.Selected = s.IsSelected()
	}
	if e, ok := AsEnableable(target); ok {
		flags.Enabled = e.IsEnabled()
	}
	if f, ok := AsFocusable(target); ok {
		flags.Focused = f.IsFocused()
	}
	return flags
}
