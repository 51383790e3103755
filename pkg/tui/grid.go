// ABOUTME: Grid is an in-memory Surface: a cell matrix with cursor state and a scripted key queue.
// ABOUTME: Tests assert on its lines; the Bubble Tea adapter renders its cells into a View string.

package tui

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/mauromedda/termform/pkg/tui/key"
)

// Grid is a Surface held entirely in memory.
type Grid struct {
	mu sync.Mutex

	rows, cols    int
	cells         []Cell
	cursorRow     int
	cursorCol     int
	cursorVisible bool

	keys     []key.Key
	flushes  int
	flushErr error
}

// NewGrid returns a blank grid with the cursor visible at the origin.
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	g := &Grid{
		rows:          rows,
		cols:          cols,
		cells:         make([]Cell, rows*cols),
		cursorVisible: true,
	}
	g.Clear()
	return g
}

// Size implements Surface.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// SetCell implements Surface.
func (g *Grid) SetCell(row, col int, r rune, attr Attr) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.mu.Lock()
	g.cells[row*g.cols+col] = Cell{Rune: r, Attr: attr}
	g.mu.Unlock()
}

// MoveCursor implements Surface.
func (g *Grid) MoveCursor(row, col int) {
	g.mu.Lock()
	g.cursorRow, g.cursorCol = row, col
	g.mu.Unlock()
}

// SetCursorVisible implements Surface.
func (g *Grid) SetCursorVisible(visible bool) {
	g.mu.Lock()
	g.cursorVisible = visible
	g.mu.Unlock()
}

// ReadKey pops the next scripted key. It returns io.EOF once the
// script is exhausted so a widget under test can never block forever.
func (g *Grid) ReadKey(ctx context.Context) (key.Key, error) {
	if err := ctx.Err(); err != nil {
		return key.Key{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.keys) == 0 {
		return key.Key{}, io.EOF
	}
	k := g.keys[0]
	g.keys = g.keys[1:]
	return k, nil
}

// Flush counts the frame, or returns the error set by FailFlush.
func (g *Grid) Flush() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.flushErr != nil {
		return g.flushErr
	}
	g.flushes++
	return nil
}

// Feed appends keys to the script.
func (g *Grid) Feed(keys ...key.Key) {
	g.mu.Lock()
	g.keys = append(g.keys, keys...)
	g.mu.Unlock()
}

// FeedString scripts each rune of s as a printable key press.
func (g *Grid) FeedString(s string) {
	for _, r := range s {
		g.Feed(key.Key{Type: key.KeyRune, Rune: r})
	}
}

// FailFlush makes every later Flush return err.
func (g *Grid) FailFlush(err error) {
	g.mu.Lock()
	g.flushErr = err
	g.mu.Unlock()
}

// Flushes reports how many frames were flushed successfully.
func (g *Grid) Flushes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.flushes
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	g.mu.Lock()
	for i := range g.cells {
		g.cells[i] = blank
	}
	g.mu.Unlock()
}

// Cell returns the cell at (row, col), or a blank cell out of range.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return blank
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cells[row*g.cols+col]
}

// Cursor reports where the cursor is and whether it is shown.
func (g *Grid) Cursor() (row, col int, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursorRow, g.cursorCol, g.cursorVisible
}

// Line returns the text of one row with continuation cells skipped.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		if c.Rune != Continuation {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// Lines returns every row as text.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for i := range lines {
		lines[i] = g.Line(i)
	}
	return lines
}

// String joins the rows with newlines, trailing spaces removed.
func (g *Grid) String() string {
	lines := g.Lines()
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// Row returns a copy of one row's cells.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Cell(nil), g.cells[row*g.cols:(row+1)*g.cols]...)
}
