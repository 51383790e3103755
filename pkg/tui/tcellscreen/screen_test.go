// ABOUTME: Tests for the tcell surface against tcell's simulation screen.
// ABOUTME: Covers drawing with attributes, cursor handling, key conversion and close behaviour.

package tcellscreen

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/key"
)

func newSim(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	sim.SetSize(cols, rows)
	s := Wrap(sim)
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

func TestScreen_Size(t *testing.T) {
	t.Parallel()
	s, _ := newSim(t, 40, 12)

	if rows, cols := s.Size(); rows != 12 || cols != 40 {
		t.Errorf("Size() = (%d, %d), want (12, 40)", rows, cols)
	}
}

func TestScreen_DrawsCells(t *testing.T) {
	t.Parallel()
	s, sim := newSim(t, 20, 5)

	tui.Print(s, 1, 2, "hi", tui.AttrUnderline|tui.AttrReverse)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	for i, want := range "hi" {
		r, _, st, _ := sim.GetContent(2+i, 1)
		if r != want {
			t.Errorf("cell (1,%d) = %q, want %q", 2+i, r, want)
		}
		_, _, attrs := st.Decompose()
		if attrs&tcell.AttrUnderline == 0 || attrs&tcell.AttrReverse == 0 {
			t.Errorf("cell (1,%d) attrs = %v, want underline|reverse", 2+i, attrs)
		}
	}
}

func TestScreen_SkipsContinuationCells(t *testing.T) {
	t.Parallel()
	s, sim := newSim(t, 10, 2)

	tui.Print(s, 0, 0, "你", tui.AttrNone)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if r, _, _, w := sim.GetContent(0, 0); r != '你' || w != 2 {
		t.Errorf("GetContent(0,0) = (%q, width %d), want ('你', 2)", r, w)
	}
}

func TestScreen_Cursor(t *testing.T) {
	t.Parallel()
	s, sim := newSim(t, 20, 5)

	s.MoveCursor(3, 4)
	s.SetCursorVisible(true)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if x, y, visible := sim.GetCursor(); !visible || x != 4 || y != 3 {
		t.Errorf("GetCursor() = (%d, %d, %v), want (4, 3, true)", x, y, visible)
	}

	s.SetCursorVisible(false)
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	if _, _, visible := sim.GetCursor(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestScreen_ReadKey(t *testing.T) {
	t.Parallel()
	s, sim := newSim(t, 20, 5)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	want := []key.Key{{Type: key.KeyUp}, {Type: key.KeyRune, Rune: 'j'}}
	for i, w := range want {
		k, err := s.ReadKey(ctx)
		if err != nil {
			t.Fatalf("ReadKey #%d error: %v", i, err)
		}
		if k != w {
			t.Errorf("ReadKey #%d = %+v, want %+v", i, k, w)
		}
	}
}

func TestScreen_ReadKeyHonoursContext(t *testing.T) {
	t.Parallel()
	s, _ := newSim(t, 20, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := s.ReadKey(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ReadKey() error = %v, want deadline exceeded", err)
	}
}

func TestScreen_ReadKeyAfterClose(t *testing.T) {
	t.Parallel()
	s, _ := newSim(t, 20, 5)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := s.ReadKey(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey() error = %v, want io.EOF", err)
	}
}

func TestConvertKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		k    tcell.Key
		r    rune
		mod  tcell.ModMask
		want key.Key
	}{
		{name: "rune", k: tcell.KeyRune, r: 'a', want: key.Key{Type: key.KeyRune, Rune: 'a'}},
		{name: "alt rune", k: tcell.KeyRune, r: 'x', mod: tcell.ModAlt, want: key.Key{Type: key.KeyRune, Rune: 'x', Alt: true}},
		{name: "enter", k: tcell.KeyEnter, want: key.Key{Type: key.KeyEnter}},
		{name: "line feed", k: tcell.KeyLF, want: key.Key{Type: key.KeyEnter}},
		{name: "del byte", k: tcell.KeyBackspace2, want: key.Key{Type: key.KeyBackspace}},
		{name: "bs byte", k: tcell.KeyBackspace, want: key.Key{Type: key.KeyCtrlH, Ctrl: true}},
		{name: "escape", k: tcell.KeyEscape, want: key.Key{Type: key.KeyEscape}},
		{name: "ctrl+c", k: tcell.KeyCtrlC, mod: tcell.ModCtrl, want: key.Key{Type: key.KeyCtrlC, Ctrl: true}},
		{name: "ctrl+b", k: tcell.KeyCtrlB, mod: tcell.ModCtrl, want: key.Key{Type: key.KeyCtrlB, Ctrl: true}},
		{name: "ctrl+k", k: tcell.KeyCtrlK, mod: tcell.ModCtrl, want: key.Key{Type: key.KeyCtrlK, Ctrl: true}},
		{name: "ctrl+z", k: tcell.KeyCtrlZ, mod: tcell.ModCtrl, want: key.Key{Type: key.KeyCtrlZ, Ctrl: true}},
		{name: "down", k: tcell.KeyDown, want: key.Key{Type: key.KeyDown}},
		{name: "page down", k: tcell.KeyPgDn, want: key.Key{Type: key.KeyPageDown}},
		{name: "function key", k: tcell.KeyF5, want: key.Key{Type: key.KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := convertKey(tt.k, tt.r, tt.mod); got != tt.want {
				t.Errorf("convertKey(%v) = %+v, want %+v", tt.k, got, tt.want)
			}
		})
	}
}
