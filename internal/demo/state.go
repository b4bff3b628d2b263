package demo

import (
	"errors"
	"fmt"
	"strings"
)

// State is the lifecycle state held by the CurrentState entry.
type State uint8

const (
	Initialization State = iota
	OperationCycle
	ShuttingDown
)

var ErrUnknownState = errors.New("unknown state")

var stateNames = [...]string{
	Initialization: "initialization",
	OperationCycle: "operation_cycle",
	ShuttingDown:   "shutting_down",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ParseState returns the State named name. Matching ignores case and
// accepts '-' in place of '_'.
func ParseState(name string) (State, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, sn := range stateNames {
		if sn == n {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// States lists every known state in declaration order.
func States() []State {
	out := make([]State, len(stateNames))
	for i := range stateNames {
		out[i] = State(i)
	}
	return out
}

func (s State) MarshalText() ([]byte, error) {
	if int(s) >= len(stateNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
