// ABOUTME: Session is the scoped acquisition of a terminal for one interaction.
// ABOUTME: Acquire enters raw mode, the alternate screen and hides the cursor; Release undoes all of it once.

package terminal

import (
	"errors"
	"fmt"
	"sync"
)

const (
	seqAltScreenOn  = "\x1b[?1049h"
	seqAltScreenOff = "\x1b[?1049l"
	seqCursorHide   = "\x1b[?25l"
	seqCursorShow   = "\x1b[?25h"
	seqClearScreen  = "\x1b[2J\x1b[H"
)

// SessionOption tweaks what Acquire sets up.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	altScreen bool
}

// WithoutAltScreen draws on the primary screen instead of the alternate one.
func WithoutAltScreen() SessionOption {
	return func(c *sessionConfig) { c.altScreen = false }
}

// Session owns a Terminal between Acquire and Release.
type Session struct {
	term      Terminal
	altScreen bool

	once sync.Once
	err  error
}

// Acquire puts t into raw mode and prepares the screen. If setup fails
// part way, whatever was already changed is restored before returning.
func Acquire(t Terminal, opts ...SessionOption) (*Session, error) {
	cfg := sessionConfig{altScreen: true}
	for _, o := range opts {
		o(&cfg)
	}

	if err := t.EnterRawMode(); err != nil {
		return nil, fmt.Errorf("acquiring terminal: %w", err)
	}

	prelude := seqCursorHide + seqClearScreen
	if cfg.altScreen {
		prelude = seqAltScreenOn + prelude
	}
	if _, err := t.Write([]byte(prelude)); err != nil {
		return nil, errors.Join(fmt.Errorf("acquiring terminal: %w", err), t.ExitRawMode())
	}

	return &Session{term: t, altScreen: cfg.altScreen}, nil
}

// Terminal returns the acquired terminal.
func (s *Session) Terminal() Terminal {
	return s.term
}

// Release shows the cursor, leaves the alternate screen and exits raw
// mode. Only the first call does any work; later calls return its error.
func (s *Session) Release() error {
	s.once.Do(func() {
		epilogue := "\x1b[0m" + seqCursorShow
		if s.altScreen {
			epilogue += seqAltScreenOff
		}
		_, werr := s.term.Write([]byte(epilogue))
		rerr := s.term.ExitRawMode()
		if werr != nil {
			werr = fmt.Errorf("restoring screen: %w", werr)
		}
		s.err = errors.Join(werr, rerr)
	})
	return s.err
}
