// ABOUTME: Screen adapts a gdamore/tcell screen to the tui.Surface drawing contract.
// ABOUTME: Events are pumped from PollEvent into a channel so ReadKey can honour context cancellation.

package tcellscreen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/key"
)

// Screen is a tui.Surface backed by tcell.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once

	mu            sync.Mutex
	cursorRow     int
	cursorCol     int
	cursorVisible bool
}

// New opens the process terminal through tcell.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initialising tcell screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adapts an already initialised tcell screen, such as a
// simulation screen in tests.
func Wrap(s tcell.Screen) *Screen {
	sc := &Screen{
		screen: s,
		events: make(chan tcell.Event, 16),
		done:   make(chan struct{}),
	}
	s.HideCursor()
	go sc.pump()
	return sc
}

func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (s *Screen) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
	return nil
}

// Size implements tui.Surface.
func (s *Screen) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// SetCell implements tui.Surface. Continuation cells are skipped since
// tcell lays out wide runes itself.
func (s *Screen) SetCell(row, col int, r rune, attr tui.Attr) {
	if r == tui.Continuation {
		return
	}
	s.screen.SetContent(col, row, r, nil, style(attr))
}

// MoveCursor implements tui.Surface.
func (s *Screen) MoveCursor(row, col int) {
	s.mu.Lock()
	s.cursorRow, s.cursorCol = row, col
	s.mu.Unlock()
}

// SetCursorVisible implements tui.Surface.
func (s *Screen) SetCursorVisible(visible bool) {
	s.mu.Lock()
	s.cursorVisible = visible
	s.mu.Unlock()
}

// Flush implements tui.Surface.
func (s *Screen) Flush() error {
	s.mu.Lock()
	if s.cursorVisible {
		s.screen.ShowCursor(s.cursorCol, s.cursorRow)
	} else {
		s.screen.HideCursor()
	}
	s.mu.Unlock()

	s.screen.Show()
	return nil
}

// ReadKey implements tui.Surface. Non-key events are dropped. It returns
// io.EOF once the screen has been closed.
func (s *Screen) ReadKey(ctx context.Context) (key.Key, error) {
	for {
		select {
		case <-ctx.Done():
			return key.Key{}, ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return key.Key{}, io.EOF
			}
			if ek, isKey := ev.(*tcell.EventKey); isKey {
				return convertKey(ek.Key(), ek.Rune(), ek.Modifiers()), nil
			}
		}
	}
}

func style(a tui.Attr) tcell.Style {
	st := tcell.StyleDefault
	if a&tui.AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&tui.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if a&tui.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if a&tui.AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}

// convertKey maps a tcell key onto the decoder's key model, so that
// keymaps bind the same names whichever surface is in use.
func convertKey(k tcell.Key, r rune, mod tcell.ModMask) key.Key {
	alt := mod&tcell.ModAlt != 0
	switch k {
	case tcell.KeyRune:
		return key.Key{Type: key.KeyRune, Rune: r, Alt: alt}
	case tcell.KeyEnter, tcell.KeyLF:
		return key.Key{Type: key.KeyEnter}
	case tcell.KeyTab:
		return key.Key{Type: key.KeyTab}
	case tcell.KeyBacktab:
		return key.Key{Type: key.KeyBackTab, Shift: true}
	case tcell.KeyBackspace2:
		return key.Key{Type: key.KeyBackspace}
	case tcell.KeyBackspace:
		// 0x08 is what terminals send for Ctrl+H.
		return key.Key{Type: key.KeyCtrlH, Ctrl: true}
	case tcell.KeyDelete:
		return key.Key{Type: key.KeyDelete}
	case tcell.KeyUp:
		return key.Key{Type: key.KeyUp, Alt: alt}
	case tcell.KeyDown:
		return key.Key{Type: key.KeyDown, Alt: alt}
	case tcell.KeyLeft:
		return key.Key{Type: key.KeyLeft, Alt: alt}
	case tcell.KeyRight:
		return key.Key{Type: key.KeyRight, Alt: alt}
	case tcell.KeyHome:
		return key.Key{Type: key.KeyHome}
	case tcell.KeyEnd:
		return key.Key{Type: key.KeyEnd}
	case tcell.KeyPgUp:
		return key.Key{Type: key.KeyPageUp}
	case tcell.KeyPgDn:
		return key.Key{Type: key.KeyPageDown}
	case tcell.KeyEscape:
		return key.Key{Type: key.KeyEscape}
	case tcell.KeyCtrlA:
		return key.Key{Type: key.KeyCtrlA, Ctrl: true}
	case tcell.KeyCtrlB:
		return key.Key{Type: key.KeyCtrlB, Ctrl: true}
	case tcell.KeyCtrlC:
		return key.Key{Type: key.KeyCtrlC, Ctrl: true}
	case tcell.KeyCtrlD:
		return key.Key{Type: key.KeyCtrlD, Ctrl: true}
	case tcell.KeyCtrlE:
		return key.Key{Type: key.KeyCtrlE, Ctrl: true}
	case tcell.KeyCtrlF:
		return key.Key{Type: key.KeyCtrlF, Ctrl: true}
	case tcell.KeyCtrlK:
		return key.Key{Type: key.KeyCtrlK, Ctrl: true}
	case tcell.KeyCtrlN:
		return key.Key{Type: key.KeyCtrlN, Ctrl: true}
	case tcell.KeyCtrlP:
		return key.Key{Type: key.KeyCtrlP, Ctrl: true}
	case tcell.KeyCtrlU:
		return key.Key{Type: key.KeyCtrlU, Ctrl: true}
	case tcell.KeyCtrlY:
		return key.Key{Type: key.KeyCtrlY, Ctrl: true}
	case tcell.KeyCtrlZ:
		return key.Key{Type: key.KeyCtrlZ, Ctrl: true}
	default:
		return key.Key{Type: key.KeyUnknown}
	}
}
