// ABOUTME: LineEditor is a boxed single-line text field with a label and horizontal scrolling.
// ABOUTME: The view only scrolls when the cursor pushes past either edge of the box.

package component

import (
	"context"
	"fmt"
	"slices"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/internal/killring"
	"github.com/mauromedda/termform/pkg/tui/internal/undo"
	"github.com/mauromedda/termform/pkg/tui/key"
	"github.com/mauromedda/termform/pkg/tui/keymap"
	"github.com/mauromedda/termform/pkg/tui/scroll"
)

const undoDepth = 64

// snapshot is the editor state restored by undo.
type snapshot struct {
	buf []rune
	vp  scroll.Viewport
}

// LineEditor collects one line of text.
type LineEditor struct {
	surf  tui.Surface
	label string
	buf   []rune
	keys  *keymap.Map
	help  bool

	layout editorLayout
	window scroll.Window
	vp     scroll.Viewport
	state  State

	kills   *killring.Ring
	history *undo.Stack[snapshot]
}

// NewLineEditor lays out an editor centred on surf with label above it.
func NewLineEditor(surf tui.Surface, label string, opts ...Option) (*LineEditor, error) {
	rows, cols := surf.Size()
	layout, err := layoutEditor(rows, cols)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts, keymap.Editor)

	e := &LineEditor{
		surf:    surf,
		label:   label,
		buf:     []rune(o.initial),
		keys:    o.keys,
		help:    o.instructions,
		layout:  layout,
		window:  scroll.Window{Size: layout.textWidth(), Policy: scroll.Clamp},
		kills:   killring.New(0),
		history: undo.New[snapshot](undoDepth),
	}
	e.vp = e.window.Clamp(scroll.Viewport{Cursor: len(e.buf)}, e.slots())
	return e, nil
}

// slots is the number of insertion points: one before each rune plus
// one at the end.
func (e *LineEditor) slots() int { return len(e.buf) + 1 }

// HandleKey applies one key press. Printable runes not bound to an
// action are inserted; other unbound keys are ignored.
func (e *LineEditor) HandleKey(k key.Key) Transition {
	if e.state != StateActive {
		return e.state.transition()
	}
	if action, ok := e.keys.Lookup(k); ok {
		return e.apply(action)
	}
	if k.IsPrintable() {
		e.save()
		e.insert(k.Rune)
	}
	return Continue
}

func (e *LineEditor) apply(a keymap.Action) Transition {
	switch a {
	case keymap.ActionLeft:
		e.vp = e.window.Prev(e.vp, e.slots())
	case keymap.ActionRight:
		e.vp = e.window.Next(e.vp, e.slots())
	case keymap.ActionBackspace, keymap.ActionDelete:
		e.deleteBack()
	case keymap.ActionHome:
		e.moveTo(0)
	case keymap.ActionEnd:
		e.moveTo(len(e.buf))
	case keymap.ActionKillEnd:
		e.killToEnd()
	case keymap.ActionKillStart:
		e.killToStart()
	case keymap.ActionYank:
		e.yank()
	case keymap.ActionUndo:
		e.undo()
	case keymap.ActionAccept:
		e.state = StateConfirmed
		return Confirm
	case keymap.ActionCancel:
		e.state = StateAborted
		return Abort
	}
	return Continue
}

func (e *LineEditor) insert(r rune) {
	e.buf = slices.Insert(e.buf, scroll.Index(e.vp), r)
	e.vp = e.window.Next(e.vp, e.slots())
}

// deleteBack removes the rune before the cursor and steps back over it.
// The window scrolls only when the cursor was already on column 0.
func (e *LineEditor) deleteBack() {
	if scroll.Index(e.vp) == 0 {
		return
	}
	e.save()
	e.vp = e.window.Prev(e.vp, e.slots())
	i := scroll.Index(e.vp)
	e.buf = slices.Delete(e.buf, i, i+1)
}

// moveTo puts the insertion point at i, scrolling only as far as needed
// to bring it into view.
func (e *LineEditor) moveTo(i int) {
	off := e.vp.Offset
	switch {
	case i < off:
		off = i
	case i >= off+e.window.Size:
		off = i - e.window.Size + 1
	}
	e.vp = scroll.Viewport{Offset: off, Cursor: i - off}
}

func (e *LineEditor) killToEnd() {
	i := scroll.Index(e.vp)
	if i == len(e.buf) {
		return
	}
	e.save()
	e.kills.Push(string(e.buf[i:]))
	e.buf = e.buf[:i]
}

func (e *LineEditor) killToStart() {
	i := scroll.Index(e.vp)
	if i == 0 {
		return
	}
	e.save()
	e.kills.Push(string(e.buf[:i]))
	e.buf = slices.Delete(e.buf, 0, i)
	e.vp = scroll.Viewport{}
}

// yank inserts the most recent kill at the insertion point, leaving the
// cursor after it.
func (e *LineEditor) yank() {
	text, ok := e.kills.Yank()
	if !ok {
		return
	}
	e.save()
	for _, r := range text {
		e.insert(r)
	}
}

// save records the state before a change to the text.
func (e *LineEditor) save() {
	e.history.Push(snapshot{buf: slices.Clone(e.buf), vp: e.vp})
}

func (e *LineEditor) undo() {
	if s, ok := e.history.Pop(); ok {
		e.buf, e.vp = s.buf, s.vp
	}
}

// Render draws the label, the box and the visible slice of text, puts
// the cursor on the insertion point and flushes.
func (e *LineEditor) Render() error {
	lay := e.layout
	if e.help {
		drawInstructions(e.surf, editorInstructions(e.keys), lay.frameTop())
	}
	lay.drawFrame(e.surf, e.label)

	text := lay.text(e.surf)
	tui.Fill(text, 0, 0, 1, lay.textWidth(), ' ', tui.AttrNone)
	end := min(e.vp.Offset+lay.textWidth(), len(e.buf))
	tui.Print(text, 0, 0, string(e.buf[e.vp.Offset:end]), tui.AttrNone)
	text.MoveCursor(0, e.vp.Cursor)

	if err := e.surf.Flush(); err != nil {
		return fmt.Errorf("rendering line editor: %w", err)
	}
	return nil
}

// Run drives the editor until the user confirms or cancels, with the
// cursor shown throughout. Cancellation is reported through the Outcome.
func (e *LineEditor) Run(ctx context.Context) (Outcome[string], error) {
	e.surf.SetCursorVisible(true)

	if err := run(ctx, e.surf, e); err != nil {
		return Outcome[string]{}, err
	}
	return e.Outcome(), nil
}

// Outcome reports the result so far.
func (e *LineEditor) Outcome() Outcome[string] {
	switch e.state {
	case StateConfirmed:
		return Confirmed(e.Text())
	case StateAborted:
		return Cancelled[string]()
	default:
		return Outcome[string]{}
	}
}

// Text returns the whole buffer.
func (e *LineEditor) Text() string { return string(e.buf) }

// InsertionPoint returns the absolute cursor position in runes.
func (e *LineEditor) InsertionPoint() int { return scroll.Index(e.vp) }

// Viewport returns the horizontal scroll position.
func (e *LineEditor) Viewport() scroll.Viewport { return e.vp }

// State returns the editor's lifecycle state.
func (e *LineEditor) State() State { return e.state }

// Width returns how many insertion points are visible at once.
func (e *LineEditor) Width() int { return e.window.Size }
