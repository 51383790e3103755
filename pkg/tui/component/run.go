// ABOUTME: The blocking render, read, apply loop both widgets share.
// ABOUTME: It stops on the first non-Continue transition or on a read or flush error.

package component

import (
	"context"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/key"
)

// Widget is a control driven one key at a time.
type Widget interface {
	HandleKey(k key.Key) Transition
	Render() error
}

func run(ctx context.Context, surf tui.Surface, w Widget) error {
	for {
		if err := w.Render(); err != nil {
			return err
		}
		k, err := surf.ReadKey(ctx)
		if err != nil {
			return err
		}
		if w.HandleKey(k) != Continue {
			return nil
		}
	}
}
