// ABOUTME: SelectList is a boxed, scrollable single-choice list with wrap-around navigation.
// ABOUTME: Choosing takes two presses of the select key on the same row; the title row shows TOP, BOT or a percentage.

package component

import (
	"context"
	"fmt"
	"slices"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/key"
	"github.com/mauromedda/termform/pkg/tui/keymap"
	"github.com/mauromedda/termform/pkg/tui/scroll"
	"github.com/mauromedda/termform/pkg/tui/width"
)

// SelectList lets the user pick one of a fixed set of options.
type SelectList[T any] struct {
	surf    tui.Surface
	title   string
	options []T
	labels  []string
	keys    *keymap.Map
	help    bool

	layout listLayout
	window scroll.Window
	vp     scroll.Viewport
	sel    Selection
	state  State
}

// NewSelectList lays out a list of options centred on surf. Options are
// shown with fmt.Sprint and copied, so later changes to the slice are
// not seen.
func NewSelectList[T any](surf tui.Surface, title string, options []T, opts ...Option) (*SelectList[T], error) {
	if len(options) == 0 {
		return nil, &ConfigError{Widget: "select list", Err: ErrNoOptions}
	}
	rows, cols := surf.Size()
	layout, err := layoutList(rows, cols, len(options))
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts, keymap.List)

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = fmt.Sprint(opt)
	}

	return &SelectList[T]{
		surf:    surf,
		title:   title,
		options: slices.Clone(options),
		labels:  labels,
		keys:    o.keys,
		help:    o.instructions,
		layout:  layout,
		window:  scroll.Window{Size: layout.rows, Policy: scroll.Wrap},
	}, nil
}

// HandleKey applies one key press. Once the list has been confirmed or
// aborted it ignores further keys and keeps reporting that transition.
func (l *SelectList[T]) HandleKey(k key.Key) Transition {
	if l.state != StateActive {
		return l.state.transition()
	}
	action, ok := l.keys.Lookup(k)
	if !ok {
		return Continue
	}

	count := len(l.options)
	switch action {
	case keymap.ActionUp:
		l.vp = l.window.Prev(l.vp, count)
	case keymap.ActionDown:
		l.vp = l.window.Next(l.vp, count)
	case keymap.ActionSelect:
		if l.sel.Press(scroll.Index(l.vp)) == PressConfirmed {
			l.state = StateConfirmed
			return Confirm
		}
	case keymap.ActionCancel:
		l.state = StateAborted
		return Abort
	}
	return Continue
}

// Progress returns the title-row position label: "TOP" on the first
// option, "BOT" on the last, otherwise a two-digit percentage.
func (l *SelectList[T]) Progress() string {
	abs, count := scroll.Index(l.vp), len(l.options)
	switch {
	case abs == 0:
		return "TOP"
	case abs == count-1:
		return "BOT"
	default:
		return fmt.Sprintf("%02d%%", (abs+1)*100/count)
	}
}

// Render draws the whole widget and flushes the surface.
func (l *SelectList[T]) Render() error {
	lay := l.layout
	if l.help {
		drawInstructions(l.surf, listInstructions(l.keys), lay.frameTop())
	}
	lay.drawFrame(l.surf)

	title := lay.titleRow(l.surf)
	tui.Fill(title, 0, 0, 1, lay.cols, ' ', tui.AttrNone)
	tui.Print(title, 0, 1, width.Truncate(l.title, lay.progressCol()-2), tui.AttrNone)
	tui.Print(title, 0, lay.progressCol(), "│  "+l.Progress(), tui.AttrNone)

	body := lay.body(l.surf)
	for row := range l.window.Rows(len(l.options)) {
		abs := l.vp.Offset + row
		marker := "( )"
		var attr tui.Attr
		if l.sel.IsMarked(abs) {
			marker = "(x)"
			attr |= tui.AttrReverse
		}
		if row == l.vp.Cursor {
			attr |= tui.AttrUnderline
		}
		line := width.PadRight(marker+" │ "+l.labels[abs], lay.cols-2)
		tui.Print(body, row, 1, line, attr)
	}

	if err := l.surf.Flush(); err != nil {
		return fmt.Errorf("rendering select list: %w", err)
	}
	return nil
}

// Run drives the list until the user confirms or cancels. The cursor is
// hidden while the list is up and shown again on every return path.
// Cancellation is reported through the Outcome, not as an error.
func (l *SelectList[T]) Run(ctx context.Context) (Outcome[T], error) {
	l.surf.SetCursorVisible(false)
	defer l.surf.SetCursorVisible(true)

	if err := run(ctx, l.surf, l); err != nil {
		return Outcome[T]{}, err
	}
	return l.Outcome(), nil
}

// Outcome reports the result so far; it is still active until a
// confirm or cancel has been handled.
func (l *SelectList[T]) Outcome() Outcome[T] {
	switch l.state {
	case StateConfirmed:
		i, ok := l.sel.Marked()
		if !ok {
			panic("component: select list confirmed with nothing marked")
		}
		return Confirmed(l.options[i])
	case StateAborted:
		return Cancelled[T]()
	default:
		return Outcome[T]{}
	}
}

// State returns the list's lifecycle state.
func (l *SelectList[T]) State() State { return l.state }

// Viewport returns the current scroll position.
func (l *SelectList[T]) Viewport() scroll.Viewport { return l.vp }

// Selection returns the mark state.
func (l *SelectList[T]) Selection() Selection { return l.sel }

// Options returns a copy of the options.
func (l *SelectList[T]) Options() []T { return slices.Clone(l.options) }

// Height returns the number of visible rows.
func (l *SelectList[T]) Height() int { return l.layout.rows }
