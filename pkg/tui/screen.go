// ABOUTME: Screen is the ANSI Surface: it owns a terminal session and diffs cell frames on Flush.
// ABOUTME: Changed cells are emitted with absolute positioning inside CSI 2026 synchronized output.

package tui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/mauromedda/termform/pkg/tui/input"
	"github.com/mauromedda/termform/pkg/tui/internal/pool"
	"github.com/mauromedda/termform/pkg/tui/key"
	"github.com/mauromedda/termform/pkg/tui/terminal"
)

const (
	syncBegin  = "\x1b[?2026h"
	syncEnd    = "\x1b[?2026l"
	cursorShow = "\x1b[?25h"
	cursorHide = "\x1b[?25l"
	sgrReset   = "\x1b[0m"
)

// ScreenOption configures Open.
type ScreenOption func(*screenConfig)

type screenConfig struct {
	session []terminal.SessionOption
}

// OnPrimaryScreen draws over the current screen contents instead of
// switching to the alternate screen.
func OnPrimaryScreen() ScreenOption {
	return func(c *screenConfig) {
		c.session = append(c.session, terminal.WithoutAltScreen())
	}
}

// Screen renders onto a real terminal.
type Screen struct {
	mu sync.Mutex

	session *terminal.Session
	term    terminal.Terminal
	keys    *input.Queue

	rows, cols  int
	front, back []Cell

	cursorRow, cursorCol int
	cursorVisible        bool
	shownRow, shownCol   int
	shownVisible         bool
}

// Open acquires t for drawing. The screen is sized once; later resizes
// are not tracked. Close must be called to restore the terminal.
func Open(t terminal.Terminal, opts ...ScreenOption) (*Screen, error) {
	var cfg screenConfig
	for _, o := range opts {
		o(&cfg)
	}

	cols, rows, err := t.Size()
	if err != nil {
		return nil, fmt.Errorf("reading terminal size: %w", err)
	}
	session, err := terminal.Acquire(t, cfg.session...)
	if err != nil {
		return nil, err
	}

	s := &Screen{
		session:  session,
		term:     t,
		keys:     input.NewQueue(t),
		rows:     rows,
		cols:     cols,
		front:    make([]Cell, rows*cols),
		back:     make([]Cell, rows*cols),
		shownRow: -1,
		shownCol: -1,
	}
	for i := range s.front {
		s.front[i] = blank
		s.back[i] = blank
	}
	return s, nil
}

// Close stops key decoding and releases the terminal session.
func (s *Screen) Close() error {
	s.keys.Close()
	return s.session.Release()
}

// Session returns the terminal session the screen holds, for
// terminal.RestoreOnPanic.
func (s *Screen) Session() *terminal.Session { return s.session }

// Size implements Surface.
func (s *Screen) Size() (rows, cols int) {
	return s.rows, s.cols
}

// SetCell implements Surface.
func (s *Screen) SetCell(row, col int, r rune, attr Attr) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.mu.Lock()
	s.back[row*s.cols+col] = Cell{Rune: r, Attr: attr}
	s.mu.Unlock()
}

// MoveCursor implements Surface.
func (s *Screen) MoveCursor(row, col int) {
	s.mu.Lock()
	s.cursorRow, s.cursorCol = row, col
	s.mu.Unlock()
}

// SetCursorVisible implements Surface.
func (s *Screen) SetCursorVisible(visible bool) {
	s.mu.Lock()
	s.cursorVisible = visible
	s.mu.Unlock()
}

// ReadKey implements Surface.
func (s *Screen) ReadKey(ctx context.Context) (key.Key, error) {
	k, err := s.keys.Next(ctx)
	if err != nil {
		return key.Key{}, fmt.Errorf("reading key: %w", err)
	}
	return k, nil
}

// Flush writes the cells that changed since the previous Flush, then
// positions the cursor. Nothing is written when nothing changed.
func (s *Screen) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := pool.Buffer()
	defer pool.PutBuffer(buf)

	var num [20]byte
	s.diff(buf, num[:])

	cursorMoved := s.cursorVisible &&
		(buf.Len() > 0 || s.cursorRow != s.shownRow || s.cursorCol != s.shownCol)
	if buf.Len() == 0 && !cursorMoved && s.cursorVisible == s.shownVisible {
		return nil
	}

	if buf.Len() > 0 {
		buf.WriteString(sgrReset)
	}
	if s.cursorVisible {
		writeCUP(buf, num[:], s.cursorRow, s.cursorCol)
		s.shownRow, s.shownCol = s.cursorRow, s.cursorCol
	}
	if s.cursorVisible != s.shownVisible {
		if s.cursorVisible {
			buf.WriteString(cursorShow)
		} else {
			buf.WriteString(cursorHide)
		}
		s.shownVisible = s.cursorVisible
	}

	frame := make([]byte, 0, len(syncBegin)+buf.Len()+len(syncEnd))
	frame = append(frame, syncBegin...)
	frame = append(frame, buf.Bytes()...)
	frame = append(frame, syncEnd...)
	if _, err := s.term.Write(frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// diff appends the escape sequences that turn front into back and
// copies back into front.
func (s *Screen) diff(buf *bytes.Buffer, num []byte) {
	atRow, atCol := -1, -1
	var attr Attr
	attrSet := false

	for row := range s.rows {
		base := row * s.cols
		for col := 0; col < s.cols; col++ {
			i := base + col
			c := s.back[i]
			if c.Rune == Continuation {
				s.front[i] = c
				continue
			}
			wide := col+1 < s.cols && s.back[i+1].Rune == Continuation
			if c == s.front[i] && (!wide || s.front[i+1].Rune == Continuation) {
				continue
			}

			if atRow != row || atCol != col {
				writeCUP(buf, num, row, col)
			}
			if !attrSet || c.Attr != attr {
				writeSGR(buf, num, c.Attr)
				attr, attrSet = c.Attr, true
			}
			buf.WriteRune(c.Rune)
			s.front[i] = c

			atRow, atCol = row, col+1
			if wide {
				atCol++
			}
		}
	}
}

func writeCUP(buf *bytes.Buffer, num []byte, row, col int) {
	buf.WriteString("\x1b[")
	buf.Write(strconv.AppendInt(num[:0], int64(row+1), 10))
	buf.WriteByte(';')
	buf.Write(strconv.AppendInt(num[:0], int64(col+1), 10))
	buf.WriteByte('H')
}

func writeSGR(buf *bytes.Buffer, num []byte, a Attr) {
	buf.WriteString("\x1b[0")
	for _, p := range [...]struct {
		bit  Attr
		code int64
	}{
		{AttrBold, 1},
		{AttrDim, 2},
		{AttrUnderline, 4},
		{AttrReverse, 7},
	} {
		if a&p.bit != 0 {
			buf.WriteByte(';')
			buf.Write(strconv.AppendInt(num[:0], p.code, 10))
		}
	}
	buf.WriteByte('m')
}
