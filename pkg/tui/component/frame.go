// ABOUTME: Screen layout for both widgets: where the boxes go, the joined list frame and the help text.
// ABOUTME: Layouts are computed once from the surface size; a frame that does not fit is a ConfigError.

package component

import (
	"fmt"
	"strings"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/keymap"
	"github.com/mauromedda/termform/pkg/tui/width"
)

const (
	// markerCol is where the "│" after "(x) " sits inside a list row.
	markerCol = 5
	// progressWidth is the width of "│  TOP" at the right of the title row.
	progressWidth = 6
	// minListCols keeps the marker and progress junctions apart.
	minListCols = 14
)

// listLayout places a select list: a title box stacked on the list box,
// sharing one border. top/left is the first option cell.
type listLayout struct {
	rows, cols int
	top, left  int
}

func layoutList(screenRows, screenCols, count int) (listLayout, error) {
	l := listLayout{
		rows: min(screenRows/2, count),
		cols: screenCols / 2,
	}
	l.top = screenRows/2 - l.rows/2 + 1
	l.left = screenCols/2 - l.cols/2 - 1

	if l.rows < 1 || l.cols < minListCols ||
		l.top-3 < 0 || l.top+l.rows >= screenRows ||
		l.left-1 < 0 || l.left+l.cols >= screenCols {
		return l, &ConfigError{Widget: "select list", Rows: screenRows, Cols: screenCols, Err: ErrSurfaceTooSmall}
	}
	return l, nil
}

// frameTop is the first row the frame occupies.
func (l listLayout) frameTop() int { return l.top - 3 }

// progressCol is the title-row column of the progress separator.
func (l listLayout) progressCol() int { return l.cols - progressWidth - 2 }

func (l listLayout) drawFrame(s tui.Surface) {
	right := l.left + l.cols
	tui.Box(s, l.top-3, l.left-1, 3, l.cols+2, tui.AttrNone)
	tui.Box(s, l.top-1, l.left-1, l.rows+2, l.cols+2, tui.AttrNone)

	s.SetCell(l.top-1, l.left-1, tui.TeeLeft, tui.AttrNone)
	s.SetCell(l.top-1, right, tui.TeeRight, tui.AttrNone)
	s.SetCell(l.top-1, l.left+markerCol, tui.TeeDown, tui.AttrNone)
	s.SetCell(l.top+l.rows, l.left+markerCol, tui.TeeUp, tui.AttrNone)
	s.SetCell(l.top-3, l.left+l.progressCol(), tui.TeeDown, tui.AttrNone)
	s.SetCell(l.top-1, l.left+l.progressCol(), tui.TeeUp, tui.AttrNone)
}

func (l listLayout) titleRow(s tui.Surface) *tui.SubSurface {
	return tui.Sub(s, l.top-2, l.left, 1, l.cols)
}

func (l listLayout) body(s tui.Surface) *tui.SubSurface {
	return tui.Sub(s, l.top, l.left, l.rows, l.cols)
}

// editorLayout places a line editor: a label, then a one-row box.
// top/left is the editor row; text starts one column in.
type editorLayout struct {
	cols      int
	top, left int
}

func layoutEditor(screenRows, screenCols int) (editorLayout, error) {
	l := editorLayout{cols: screenCols / 2}
	l.top = screenRows / 2
	l.left = screenCols/2 - l.cols/2

	if l.textWidth() < 1 ||
		l.top-2 < 0 || l.top+1 >= screenRows ||
		l.left-1 < 0 || l.left+l.cols >= screenCols {
		return l, &ConfigError{Widget: "line editor", Rows: screenRows, Cols: screenCols, Err: ErrSurfaceTooSmall}
	}
	return l, nil
}

// textWidth is the number of insertion points visible at once.
func (l editorLayout) textWidth() int { return l.cols - 2 }

func (l editorLayout) frameTop() int { return l.top - 2 }

func (l editorLayout) drawFrame(s tui.Surface, label string) {
	tui.Fill(s, l.top-2, l.left-1, 1, l.cols+2, ' ', tui.AttrNone)
	tui.Print(s, l.top-2, l.left-1, width.Truncate(label, l.cols+2), tui.AttrNone)
	tui.Box(s, l.top-1, l.left-1, 3, l.cols+2, tui.AttrNone)
}

func (l editorLayout) text(s tui.Surface) *tui.SubSurface {
	return tui.Sub(s, l.top, l.left+1, 1, l.textWidth())
}

// drawInstructions writes help text in the top-left corner, wrapped to
// the screen and cut off above row limit.
func drawInstructions(s tui.Surface, text string, limit int) {
	_, cols := s.Size()
	area := tui.Sub(s, 1, 1, limit-1, cols-2)
	rows, w := area.Size()
	for i, line := range width.Wrap(text, w) {
		if i >= rows {
			break
		}
		tui.Print(area, i, 0, line, tui.AttrDim)
	}
}

func listInstructions(m *keymap.Map) string {
	return fmt.Sprintf(
		"1. Use %s or %s to move.\n2. Press %s to select, press it again to confirm.\n3. Press %s to cancel.",
		keyNames(m, keymap.ActionUp), keyNames(m, keymap.ActionDown),
		keyNames(m, keymap.ActionSelect), keyNames(m, keymap.ActionCancel),
	)
}

func editorInstructions(m *keymap.Map) string {
	return fmt.Sprintf(
		"1. Type to edit, %s or %s to move.\n2. Press %s to confirm.\n3. Press %s to cancel.",
		keyNames(m, keymap.ActionLeft), keyNames(m, keymap.ActionRight),
		keyNames(m, keymap.ActionAccept), keyNames(m, keymap.ActionCancel),
	)
}

func keyNames(m *keymap.Map, a keymap.Action) string {
	keys := m.Keys(a)
	if len(keys) == 0 {
		return "(unbound)"
	}
	return strings.Join(keys, "/")
}
