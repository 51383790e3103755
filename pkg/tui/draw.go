// ABOUTME: Drawing primitives over any Surface: text, fills, box-drawing lines and frames.
// ABOUTME: Sub clips a Surface to a rectangle and translates coordinates into it.

package tui

import (
	"context"

	"github.com/mauromedda/termform/pkg/tui/key"
	"github.com/mauromedda/termform/pkg/tui/width"
)

// Box-drawing runes shared by widgets that join frames.
const (
	Horizontal  = '─'
	Vertical    = '│'
	TopLeft     = '┌'
	TopRight    = '┐'
	BottomLeft  = '└'
	BottomRight = '┘'
	TeeLeft     = '├'
	TeeRight    = '┤'
	TeeDown     = '┬'
	TeeUp       = '┴'
)

// Print writes text starting at (row, col) and returns the number of
// columns used. Text is clipped at the right edge; a double-width
// character that would straddle it is dropped.
func Print(s Surface, row, col int, text string, attr Attr) int {
	_, cols := s.Size()
	start := col
	for _, c := range width.Clusters(text) {
		if c.Width == 0 {
			continue
		}
		if col+c.Width > cols {
			break
		}
		s.SetCell(row, col, c.Rune, attr)
		if c.Width == 2 {
			s.SetCell(row, col+1, Continuation, attr)
		}
		col += c.Width
	}
	return col - start
}

// Fill sets every cell of the h×w rectangle at (row, col) to r.
func Fill(s Surface, row, col, h, w int, r rune, attr Attr) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			s.SetCell(y, x, r, attr)
		}
	}
}

// HLine draws n horizontal line cells rightwards from (row, col).
func HLine(s Surface, row, col, n int, attr Attr) {
	Fill(s, row, col, 1, n, Horizontal, attr)
}

// VLine draws n vertical line cells downwards from (row, col).
func VLine(s Surface, row, col, n int, attr Attr) {
	Fill(s, row, col, n, 1, Vertical, attr)
}

// Box frames the h×w rectangle at (row, col). The interior is untouched.
// Rectangles smaller than 2×2 are not drawn.
func Box(s Surface, row, col, h, w int, attr Attr) {
	if h < 2 || w < 2 {
		return
	}
	bottom, right := row+h-1, col+w-1
	HLine(s, row, col+1, w-2, attr)
	HLine(s, bottom, col+1, w-2, attr)
	VLine(s, row+1, col, h-2, attr)
	VLine(s, row+1, right, h-2, attr)
	s.SetCell(row, col, TopLeft, attr)
	s.SetCell(row, right, TopRight, attr)
	s.SetCell(bottom, col, BottomLeft, attr)
	s.SetCell(bottom, right, BottomRight, attr)
}

// SubSurface is a clipped window onto a parent Surface.
type SubSurface struct {
	parent   Surface
	row, col int
	rows     int
	cols     int
}

// Sub returns the h×w region of s whose top-left corner is (row, col).
// The region is clipped to the parent's bounds.
func Sub(s Surface, row, col, h, w int) *SubSurface {
	pr, pc := s.Size()
	h = max(0, min(h, pr-row))
	w = max(0, min(w, pc-col))
	return &SubSurface{parent: s, row: row, col: col, rows: h, cols: w}
}

// Origin returns the region's top-left corner in parent coordinates.
func (s *SubSurface) Origin() (row, col int) {
	return s.row, s.col
}

// Size implements Surface.
func (s *SubSurface) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCell implements Surface with coordinates relative to the region.
func (s *SubSurface) SetCell(row, col int, r rune, attr Attr) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.parent.SetCell(s.row+row, s.col+col, r, attr)
}

// MoveCursor implements Surface with coordinates relative to the region.
func (s *SubSurface) MoveCursor(row, col int) {
	s.parent.MoveCursor(s.row+row, s.col+col)
}

// SetCursorVisible implements Surface.
func (s *SubSurface) SetCursorVisible(visible bool) {
	s.parent.SetCursorVisible(visible)
}

// ReadKey implements Surface.
func (s *SubSurface) ReadKey(ctx context.Context) (key.Key, error) {
	return s.parent.ReadKey(ctx)
}

// Flush implements Surface.
func (s *SubSurface) Flush() error {
	return s.parent.Flush()
}
