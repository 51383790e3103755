// ABOUTME: StdinBuffer decodes a raw terminal byte stream into key events.
// ABOUTME: Frames UTF-8 runes and escape sequences; a lone ESC is emitted after a short quiet period.

package input

import (
	"context"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/termform/pkg/tui/key"
)

const (
	readBufSize = 256
	escTimeout  = 50 * time.Millisecond

	// maxSeqLen bounds the escape sequences recognised by key.ParseKey.
	maxSeqLen = 8
)

// StdinBuffer reads from a reader and dispatches parsed key events via onKey.
type StdinBuffer struct {
	reader io.Reader
	onKey  func(key.Key)

	mu  sync.Mutex
	buf []byte
}

// NewStdinBuffer creates a StdinBuffer that reads from r and calls onKey for each parsed key.
func NewStdinBuffer(r io.Reader, onKey func(key.Key)) *StdinBuffer {
	return &StdinBuffer{
		reader: r,
		onKey:  onKey,
		buf:    make([]byte, 0, readBufSize),
	}
}

// Start reads until ctx is cancelled or the reader fails, dispatching keys
// as they complete. It returns the reader's error (io.EOF included) or
// ctx.Err().
func (b *StdinBuffer) Start(ctx context.Context) error {
	chunks := make(chan chunk)
	done := make(chan struct{})
	defer close(done)

	go b.readLoop(chunks, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-chunks:
			if !ok || c.err != nil {
				b.flushRemaining()
				if c.err == nil {
					return io.EOF
				}
				return c.err
			}
			b.mu.Lock()
			b.buf = append(b.buf, c.data...)
			b.mu.Unlock()
			if err := b.dispatch(ctx, chunks); err != nil {
				return err
			}
		}
	}
}

// chunk is the outcome of one Read call.
type chunk struct {
	data []byte
	err  error
}

// readLoop forwards reads to ch until the reader fails or done closes.
func (b *StdinBuffer) readLoop(ch chan<- chunk, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- chunk{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case ch <- chunk{err: err}:
			case <-done:
			}
			return
		}
	}
}

// dispatch emits every complete key at the front of the buffer. When the
// buffer holds an incomplete sequence it waits up to escTimeout for more
// bytes; if none arrive the leading byte is resolved on its own.
func (b *StdinBuffer) dispatch(ctx context.Context, chunks <-chan chunk) error {
	for {
		b.mu.Lock()
		consumed, k, incomplete := b.tryParse()
		if consumed > 0 {
			b.buf = b.buf[consumed:]
		}
		b.mu.Unlock()

		switch {
		case consumed > 0:
			b.onKey(k)
		case incomplete:
			more, err := b.waitForMore(ctx, chunks)
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		default:
			return nil
		}
	}
}

// waitForMore appends the next chunk if it arrives within escTimeout.
// On timeout the pending prefix is forced out. It reports whether parsing
// should continue.
func (b *StdinBuffer) waitForMore(ctx context.Context, chunks <-chan chunk) (bool, error) {
	timer := time.NewTimer(escTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case c, ok := <-chunks:
		if !ok || c.err != nil {
			b.flushRemaining()
			if c.err == nil {
				return false, io.EOF
			}
			return false, c.err
		}
		b.mu.Lock()
		b.buf = append(b.buf, c.data...)
		b.mu.Unlock()
		return true, nil
	case <-timer.C:
		b.forceOne()
		return true, nil
	}
}

// tryParse attempts to parse one key from the front of b.buf.
// Returns (consumed bytes, parsed key, incomplete flag).
// Must be called with b.mu held.
func (b *StdinBuffer) tryParse() (int, key.Key, bool) {
	if len(b.buf) == 0 {
		return 0, key.Key{}, false
	}

	if b.buf[0] == 0x1b {
		if len(b.buf) == 1 {
			return 0, key.Key{}, true
		}
		return b.parseEscape()
	}

	if !utf8.FullRune(b.buf) {
		return 0, key.Key{}, true
	}

	r, size := utf8.DecodeRune(b.buf)
	if r == utf8.RuneError {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(b.buf[:size])), false
}

// parseEscape matches the longest known escape sequence at the front of
// the buffer. Must be called with b.mu held and len(b.buf) >= 2.
func (b *StdinBuffer) parseEscape() (int, key.Key, bool) {
	for end := min(len(b.buf), maxSeqLen); end >= 2; end-- {
		k := key.ParseKey(string(b.buf[:end]))
		if k.Type != key.KeyUnknown {
			return end, k, false
		}
	}

	// A short CSI/SS3 prefix may still be in flight.
	if len(b.buf) <= 3 && (b.buf[1] == '[' || b.buf[1] == 'O') {
		return 0, key.Key{}, true
	}

	// Unknown sequence: report ESC, then re-parse the rest.
	return 1, key.Key{Type: key.KeyEscape}, false
}

// forceOne resolves the leading byte when no more input arrived in time.
func (b *StdinBuffer) forceOne() {
	b.mu.Lock()
	if len(b.buf) == 0 {
		b.mu.Unlock()
		return
	}
	k := key.Key{Type: key.KeyUnknown}
	if b.buf[0] == 0x1b {
		k = key.Key{Type: key.KeyEscape}
	}
	b.buf = b.buf[1:]
	b.mu.Unlock()
	b.onKey(k)
}

// flushRemaining dispatches whatever is left once the reader is exhausted.
func (b *StdinBuffer) flushRemaining() {
	for {
		b.mu.Lock()
		if len(b.buf) == 0 {
			b.mu.Unlock()
			return
		}
		consumed, k, incomplete := b.tryParse()
		if incomplete {
			b.mu.Unlock()
			b.forceOne()
			continue
		}
		b.buf = b.buf[consumed:]
		b.mu.Unlock()
		b.onKey(k)
	}
}
