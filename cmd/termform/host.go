// ABOUTME: Hosts pair a drawing surface with the loop that drives a widget on it.
// ABOUTME: One host per backend: ANSI screen, tcell screen, or a Bubble Tea program over a grid.

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/mauromedda/termform/internal/config"
	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/btea"
	"github.com/mauromedda/termform/pkg/tui/component"
	"github.com/mauromedda/termform/pkg/tui/tcellscreen"
	"github.com/mauromedda/termform/pkg/tui/terminal"
)

// host is where a widget is drawn and run. Close restores the terminal
// and is safe to call more than once.
type host interface {
	Surface() tui.Surface
	// Drive runs w to completion. run is the widget's own blocking loop;
	// hosts that own their event loop feed w directly instead.
	Drive(ctx context.Context, w component.Widget, run func(context.Context) error) error
	Close() error
}

// openHost opens the terminal for the named backend.
func openHost(backend string) (host, error) {
	switch backend {
	case config.BackendANSI:
		scr, err := tui.Open(terminal.NewProcessTerminal())
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		return &ansiHost{screen: scr}, nil
	case config.BackendTcell:
		scr, err := tcellscreen.New()
		if err != nil {
			return nil, err
		}
		return &tcellHost{screen: scr}, nil
	case config.BackendBubbleTea:
		cols, rows, err := terminal.NewProcessTerminal().Size()
		if err != nil {
			return nil, fmt.Errorf("reading terminal size: %w", err)
		}
		return &teaHost{grid: tui.NewGrid(rows, cols)}, nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, backend)
	}
}

type ansiHost struct {
	screen *tui.Screen
	once   sync.Once
	err    error
}

func (h *ansiHost) Surface() tui.Surface { return h.screen }

func (h *ansiHost) Drive(ctx context.Context, _ component.Widget, run func(context.Context) error) error {
	defer terminal.RestoreOnPanic(h.screen.Session())
	return run(ctx)
}

func (h *ansiHost) Close() error {
	h.once.Do(func() { h.err = h.screen.Close() })
	return h.err
}

type tcellHost struct {
	screen *tcellscreen.Screen
}

func (h *tcellHost) Surface() tui.Surface { return h.screen }

func (h *tcellHost) Drive(ctx context.Context, _ component.Widget, run func(context.Context) error) error {
	return run(ctx)
}

func (h *tcellHost) Close() error { return h.screen.Close() }

type teaHost struct {
	grid *tui.Grid
}

func (h *teaHost) Surface() tui.Surface { return h.grid }

func (h *teaHost) Drive(ctx context.Context, w component.Widget, _ func(context.Context) error) error {
	return btea.Run(ctx, h.grid, w)
}

func (h *teaHost) Close() error { return nil }
