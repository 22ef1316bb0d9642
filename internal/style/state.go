package style

import (
	"errors"
	"fmt"
	"strings"
)

// State identifies an interaction state of a control.
type State uint8

const (
	Normal State = iota
	Highlighted
	Selected
	Disabled
	Focused
)

// ErrUnknownState is returned when a state name cannot be parsed.
var ErrUnknownState = errors.New("unknown state")

var stateNames = [...]string{
	Normal:      "normal",
	Highlighted: "highlighted",
	Selected:    "selected",
	Disabled:    "disabled",
	Focused:     "focused",
}

// States lists every state in declaration order.
var States = []State{Normal, Highlighted, Selected, Disabled, Focused}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ParseState converts a state name into a State. Matching is case-insensitive.
func ParseState(value string) (State, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for i, candidate := range stateNames {
		if candidate == name {
			return State(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownState, value)
}

// StateSet is a set of states. The zero value is empty.
type StateSet uint8

// NewStateSet returns a set containing the given states.
func NewStateSet(states ...State) StateSet {
	var set StateSet
	for _, s := range states {
		set = set.With(s)
	}
	return set
}

// ParseStateSet parses a comma separated list of state names.
func ParseStateSet(value string) (StateSet, error) {
	var set StateSet
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseState(part)
		if err != nil {
			return 0, err
		}
		set = set.With(s)
	}
	return set, nil
}

func (set StateSet) Has(s State) bool {
	return set&(1<<s) != 0
}

func (set StateSet) With(s State) StateSet {
	return set | 1<<s
}

func (set StateSet) Without(s State) StateSet {
	return set &^ (1 << s)
}

func (set StateSet) IsEmpty() bool {
	return set == 0
}

// States returns the members in declaration order.
func (set StateSet) States() []State {
	var out []State
	for _, s := range States {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (set StateSet) String() string {
	states := set.States()
	if len(states) == 0 {
		return "none"
	}
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}
