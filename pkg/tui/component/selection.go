// ABOUTME: Selection is the two-step mark/confirm state machine behind the select key.
// ABOUTME: The first press on an index marks it; a second press on the same index confirms.

package component

// Press is what a select key press did.
type Press int

const (
	// PressMarked means the index is now marked, replacing any earlier mark.
	PressMarked Press = iota
	// PressConfirmed means the index was already marked and is now final.
	PressConfirmed
)

// Selection tracks the marked absolute index, if any.
type Selection struct {
	index  int
	marked bool
}

// Press applies a select key press on the absolute index abs.
func (s *Selection) Press(abs int) Press {
	if s.marked && s.index == abs {
		return PressConfirmed
	}
	s.index, s.marked = abs, true
	return PressMarked
}

// Marked returns the marked index and whether there is one.
func (s Selection) Marked() (int, bool) {
	return s.index, s.marked
}

// IsMarked reports whether abs is the marked index.
func (s Selection) IsMarked(abs int) bool {
	return s.marked && s.index == abs
}
