// ABOUTME: Surface is the character-grid drawing contract every widget renders onto.
// ABOUTME: Defines cell attributes, the Cell value and the continuation marker for wide runes.

package tui

import (
	"context"

	"github.com/mauromedda/termform/pkg/tui/key"
)

// Attr is a bitmask of display attributes for one cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrDim

	AttrNone Attr = 0
)

// Continuation fills the cell to the right of a double-width rune.
// Surfaces never draw it.
const Continuation rune = -1

// Cell is one character position on a surface.
type Cell struct {
	Rune rune
	Attr Attr
}

var blank = Cell{Rune: ' '}

// Surface is a rectangular grid of cells plus a single key source.
// Coordinates are zero-based; writes outside the grid are ignored.
type Surface interface {
	// Size reports the grid dimensions.
	Size() (rows, cols int)

	// SetCell writes one cell into the pending frame.
	SetCell(row, col int, r rune, attr Attr)

	// MoveCursor places the visible cursor for the next Flush.
	MoveCursor(row, col int)

	// SetCursorVisible shows or hides the cursor from the next Flush on.
	SetCursorVisible(visible bool)

	// ReadKey blocks for the next key or until ctx is done.
	ReadKey(ctx context.Context) (key.Key, error)

	// Flush makes the pending frame visible.
	Flush() error
}
