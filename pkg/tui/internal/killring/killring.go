// ABOUTME: Ring of recently killed text that the line editor yanks back
// ABOUTME: Bounded; once full, each kill overwrites the oldest entry

package killring

const defaultSize = 16

// Ring holds killed text, most recent last.
type Ring struct {
	entries []string
	next    int
	size    int
}

// New creates a Ring holding up to size entries; size <= 0 uses the
// default capacity.
func New(size int) *Ring {
	if size <= 0 {
		size = defaultSize
	}
	return &Ring{entries: make([]string, 0, size), size: size}
}

// Push records killed text. Empty kills are not recorded.
func (r *Ring) Push(text string) {
	if text == "" {
		return
	}
	if len(r.entries) < r.size {
		r.entries = append(r.entries, text)
	} else {
		r.entries[r.next] = text
	}
	r.next = (r.next + 1) % r.size
}

// Yank returns the most recent kill.
func (r *Ring) Yank() (string, bool) {
	if len(r.entries) == 0 {
		return "", false
	}
	return r.entries[(r.next-1+len(r.entries))%len(r.entries)], true
}

// Len returns the number of entries held.
func (r *Ring) Len() int {
	return len(r.entries)
}
