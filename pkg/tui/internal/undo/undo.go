// ABOUTME: Bounded undo history of state snapshots
// ABOUTME: Type-parameterised; the oldest snapshot is dropped once the depth is reached

package undo

// Stack is a bounded LIFO of snapshots.
type Stack[S any] struct {
	states []S
	depth  int
}

// New creates a Stack that keeps at most depth snapshots.
func New[S any](depth int) *Stack[S] {
	return &Stack[S]{states: make([]S, 0, depth), depth: max(depth, 1)}
}

// Push records a snapshot taken before a change.
func (s *Stack[S]) Push(state S) {
	if len(s.states) >= s.depth {
		s.states = append(s.states[:0], s.states[1:]...)
	}
	s.states = append(s.states, state)
}

// Pop returns the most recent snapshot, or false when there is none.
func (s *Stack[S]) Pop() (S, bool) {
	if len(s.states) == 0 {
		var zero S
		return zero, false
	}
	last := s.states[len(s.states)-1]
	s.states = s.states[:len(s.states)-1]
	return last, true
}

// Len returns the number of snapshots held.
func (s *Stack[S]) Len() int {
	return len(s.states)
}
