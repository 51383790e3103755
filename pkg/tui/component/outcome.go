// ABOUTME: Widget lifecycle types: the State a widget is in, the Transition a key causes, and the final Outcome.
// ABOUTME: Outcome is a sum type so cancellation is a value the caller inspects, never an error or a process exit.

package component

import "fmt"

// State is where a widget is in its interaction.
type State int

const (
	StateActive State = iota
	StateConfirmed
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateConfirmed:
		return "confirmed"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition is the effect of one key press on a widget.
type Transition int

const (
	Continue Transition = iota
	Confirm
	Abort
)

func (t Transition) String() string {
	switch t {
	case Continue:
		return "continue"
	case Confirm:
		return "confirm"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// transition maps a settled state back to the transition that produced it.
func (s State) transition() Transition {
	switch s {
	case StateConfirmed:
		return Confirm
	case StateAborted:
		return Abort
	default:
		return Continue
	}
}

// Outcome is the result of a finished interaction: either a confirmed
// value or a cancellation. The zero Outcome is still active.
type Outcome[T any] struct {
	state State
	value T
}

// Confirmed wraps a value the user accepted.
func Confirmed[T any](v T) Outcome[T] {
	return Outcome[T]{state: StateConfirmed, value: v}
}

// Cancelled reports that the user backed out.
func Cancelled[T any]() Outcome[T] {
	return Outcome[T]{state: StateAborted}
}

// Value returns the confirmed value and true, or the zero value and false.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.state == StateConfirmed
}

// Cancelled reports whether the interaction was cancelled.
func (o Outcome[T]) Cancelled() bool {
	return o.state == StateAborted
}

// State returns the state the interaction ended in.
func (o Outcome[T]) State() State {
	return o.state
}

func (o Outcome[T]) String() string {
	if o.state == StateConfirmed {
		return fmt.Sprintf("confirmed(%v)", o.value)
	}
	return o.state.String()
}
