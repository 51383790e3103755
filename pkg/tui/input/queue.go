// ABOUTME: Queue turns the push-style StdinBuffer into a blocking, pull-style key source.
// ABOUTME: Widgets call Next once per loop iteration; decoding runs on a background goroutine.

package input

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/mauromedda/termform/pkg/tui/key"
)

const queueDepth = 64

// ErrQueueClosed is returned by Next after Close.
var ErrQueueClosed = errors.New("input queue closed")

// Queue buffers decoded keys until a consumer asks for them.
type Queue struct {
	keys   chan key.Key
	done   chan struct{}
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// NewQueue starts decoding r in the background.
func NewQueue(r io.Reader) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		keys:   make(chan key.Key, queueDepth),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	buf := NewStdinBuffer(r, func(k key.Key) {
		select {
		case q.keys <- k:
		case <-ctx.Done():
		}
	})

	go func() {
		defer close(q.done)
		err := buf.Start(ctx)
		q.mu.Lock()
		q.err = err
		q.mu.Unlock()
	}()

	return q
}

// Next blocks until a key is available, the reader fails, or ctx ends.
// Keys decoded before a reader failure are still delivered first.
func (q *Queue) Next(ctx context.Context) (key.Key, error) {
	select {
	case k := <-q.keys:
		return k, nil
	default:
	}

	select {
	case k := <-q.keys:
		return k, nil
	case <-ctx.Done():
		return key.Key{}, ctx.Err()
	case <-q.done:
		select {
		case k := <-q.keys:
			return k, nil
		default:
		}
		return key.Key{}, q.failure()
	}
}

// Close stops decoding. The underlying reader is not closed.
func (q *Queue) Close() {
	q.cancel()
}

func (q *Queue) failure() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err == nil || errors.Is(q.err, context.Canceled) {
		return ErrQueueClosed
	}
	return q.err
}
