// ABOUTME: Window is the scrolling arithmetic shared by every widget: a viewport of Size slots over count items.
// ABOUTME: Wrap jumps between the ends at the boundaries; Clamp stops there.

package scroll

// Policy decides what happens when the cursor moves past either end.
type Policy int

const (
	// Wrap moves from the first item to the last and back.
	Wrap Policy = iota
	// Clamp leaves the viewport unchanged at either end.
	Clamp
)

func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// Viewport locates the visible window and the cursor inside it.
// Offset is the absolute index of the first visible item; Cursor is
// relative to Offset.
type Viewport struct {
	Offset int
	Cursor int
}

// Window holds the geometry and boundary policy of a scrolling region.
type Window struct {
	Size   int
	Policy Policy
}

// Rows returns how many slots are in use for count items.
func (w Window) Rows(count int) int {
	return max(0, min(w.Size, count))
}

// Index returns the absolute position of the cursor.
func Index(vp Viewport) int {
	return vp.Offset + vp.Cursor
}

// Prev moves the cursor one item back, scrolling the window when the
// cursor is already on its first row.
func (w Window) Prev(vp Viewport, count int) Viewport {
	if count <= 0 {
		return Viewport{}
	}
	if Index(vp) == 0 {
		if w.Policy == Clamp {
			return vp
		}
		return Viewport{Offset: max(0, count-w.Size), Cursor: w.Rows(count) - 1}
	}
	if vp.Cursor > 0 {
		vp.Cursor--
	} else {
		vp.Offset--
	}
	return vp
}

// Next moves the cursor one item forward, scrolling the window when the
// cursor is already on its last row.
func (w Window) Next(vp Viewport, count int) Viewport {
	if count <= 0 {
		return Viewport{}
	}
	if Index(vp) >= count-1 {
		if w.Policy == Clamp {
			return vp
		}
		return Viewport{}
	}
	if vp.Cursor < w.Rows(count)-1 {
		vp.Cursor++
	} else {
		vp.Offset++
	}
	return vp
}

// Clamp brings vp back inside the bounds for count items, keeping the
// absolute index where possible.
func (w Window) Clamp(vp Viewport, count int) Viewport {
	rows := w.Rows(count)
	if rows == 0 {
		return Viewport{}
	}
	abs := min(max(Index(vp), 0), count-1)
	offset := min(max(vp.Offset, 0), count-rows)
	switch {
	case abs < offset:
		offset = abs
	case abs >= offset+rows:
		offset = abs - rows + 1
	}
	return Viewport{Offset: offset, Cursor: abs - offset}
}

// Valid reports whether vp satisfies the bounds for count items.
func (w Window) Valid(vp Viewport, count int) bool {
	rows := w.Rows(count)
	if rows == 0 {
		return vp == Viewport{}
	}
	return vp.Offset >= 0 && vp.Offset <= count-rows &&
		vp.Cursor >= 0 && vp.Cursor < rows
}
