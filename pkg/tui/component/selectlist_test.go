// ABOUTME: Tests for SelectList: construction errors, wrap-around navigation, two-step selection, progress and rendering.
// ABOUTME: Widgets draw onto an in-memory Grid fed with scripted keys.

package component

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/key"
	"github.com/mauromedda/termform/pkg/tui/keymap"
	"github.com/mauromedda/termform/pkg/tui/scroll"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func newList(t *testing.T, g *tui.Grid, options []string, opts ...Option) *SelectList[string] {
	t.Helper()
	l, err := NewSelectList(g, "Pick", options, opts...)
	if err != nil {
		t.Fatalf("NewSelectList() error: %v", err)
	}
	return l
}

func TestNewSelectList_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    int
		cols    int
		options []string
		want    error
	}{
		{name: "no options", rows: 24, cols: 80, options: nil, want: ErrNoOptions},
		{name: "too short", rows: 5, cols: 80, options: numbered(3), want: ErrSurfaceTooSmall},
		{name: "too narrow", rows: 24, cols: 26, options: numbered(3), want: ErrSurfaceTooSmall},
		{name: "no rows", rows: 1, cols: 80, options: numbered(3), want: ErrSurfaceTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewSelectList(tui.NewGrid(tt.rows, tt.cols), "t", tt.options)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %T is not a *ConfigError", err)
			}
			if cfgErr.Widget != "select list" {
				t.Errorf("Widget = %q", cfgErr.Widget)
			}
		})
	}
}

func TestNewSelectList_CopiesOptions(t *testing.T) {
	t.Parallel()
	opts := []string{"a", "b"}
	l := newList(t, tui.NewGrid(24, 40), opts)
	opts[0] = "z"

	if got := l.Options()[0]; got != "a" {
		t.Errorf("Options()[0] = %q, want %q", got, "a")
	}
}

func TestSelectList_NavigationStaysInBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for _, count := range []int{1, 2, 3, 5, 11, 12, 13, 30} {
		g := tui.NewGrid(24, 40)
		l := newList(t, g, numbered(count))
		height := l.Height()
		if height != min(12, count) {
			t.Fatalf("count=%d: Height() = %d, want %d", count, height, min(12, count))
		}

		for step := range 300 {
			k := keyUp
			if rng.IntN(2) == 0 {
				k = keyDown
			}
			if tr := l.HandleKey(k); tr != Continue {
				t.Fatalf("navigation returned %v", tr)
			}
			vp := l.Viewport()
			if vp.Cursor < 0 || vp.Cursor > height-1 || vp.Offset < 0 || vp.Offset > max(0, count-height) {
				t.Fatalf("count=%d step=%d: viewport %+v out of bounds", count, step, vp)
			}
		}
	}
}

func TestSelectList_WrapAround(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 4, 12, 20} {
		l := newList(t, tui.NewGrid(24, 40), numbered(count))

		l.HandleKey(keyUp)
		if got := scroll.Index(l.Viewport()); got != count-1 {
			t.Errorf("count=%d: up from top -> %d, want %d", count, got, count-1)
		}
		l.HandleKey(keyDown)
		if got := l.Viewport(); got != (scroll.Viewport{}) {
			t.Errorf("count=%d: down from bottom -> %+v, want origin", count, got)
		}
	}
}

func TestSelectList_VimMotions(t *testing.T) {
	t.Parallel()
	l := newList(t, tui.NewGrid(24, 40), numbered(5))

	l.HandleKey(runeKey('j'))
	l.HandleKey(runeKey('j'))
	l.HandleKey(runeKey('k'))
	if got := scroll.Index(l.Viewport()); got != 1 {
		t.Errorf("index after j j k = %d, want 1", got)
	}
}

func TestSelectList_TwoStepSelect(t *testing.T) {
	t.Parallel()

	t.Run("same option twice confirms", func(t *testing.T) {
		t.Parallel()
		l := newList(t, tui.NewGrid(24, 40), []string{"a", "b", "c"})

		l.HandleKey(keyDown)
		if tr := l.HandleKey(keySpace); tr != Continue {
			t.Fatalf("first select = %v, want continue", tr)
		}
		if tr := l.HandleKey(keySpace); tr != Confirm {
			t.Fatalf("second select = %v, want confirm", tr)
		}
		if v, ok := l.Outcome().Value(); !ok || v != "b" {
			t.Errorf("Outcome().Value() = (%q, %v), want (\"b\", true)", v, ok)
		}
	})

	t.Run("different option only marks", func(t *testing.T) {
		t.Parallel()
		l := newList(t, tui.NewGrid(24, 40), []string{"a", "b", "c"})

		l.HandleKey(keyDown)
		l.HandleKey(keySpace)
		l.HandleKey(keyDown)
		if tr := l.HandleKey(keySpace); tr != Continue {
			t.Fatalf("select on c = %v, want continue", tr)
		}
		if i, ok := l.Selection().Marked(); !ok || i != 2 {
			t.Errorf("marked = (%d, %v), want (2, true)", i, ok)
		}
		if l.State() != StateActive {
			t.Errorf("State() = %v, want active", l.State())
		}
	})
}

func TestSelectList_Cancel(t *testing.T) {
	t.Parallel()

	for _, k := range []key.Key{keyEscape, keyCtrlC} {
		l := newList(t, tui.NewGrid(24, 40), numbered(3))
		if tr := l.HandleKey(k); tr != Abort {
			t.Errorf("%v -> %v, want abort", k, tr)
		}
		if !l.Outcome().Cancelled() {
			t.Errorf("%v: outcome not cancelled", k)
		}
		if tr := l.HandleKey(keySpace); tr != Abort {
			t.Errorf("key after abort -> %v, want abort", tr)
		}
	}
}

func TestSelectList_IgnoresUnboundKeys(t *testing.T) {
	t.Parallel()
	l := newList(t, tui.NewGrid(24, 40), numbered(3))
	l.HandleKey(keyDown)

	for _, k := range []key.Key{runeKey('x'), keyLeft, keyEnter, {Type: key.KeyUnknown}} {
		if tr := l.HandleKey(k); tr != Continue {
			t.Errorf("%v -> %v, want continue", k, tr)
		}
	}
	if got := scroll.Index(l.Viewport()); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if _, ok := l.Selection().Marked(); ok {
		t.Error("unbound keys must not mark")
	}
}

func TestSelectList_Progress(t *testing.T) {
	t.Parallel()

	// 11 rows gives a five-row window.
	newFourteen := func() *SelectList[string] {
		l := newList(t, tui.NewGrid(11, 40), numbered(14))
		if l.Height() != 5 {
			t.Fatalf("Height() = %d, want 5", l.Height())
		}
		return l
	}

	tests := []struct {
		name  string
		moves []key.Key
		want  string
	}{
		{name: "top", want: "TOP"},
		{name: "bottom", moves: []key.Key{keyUp}, want: "BOT"},
		{name: "index 6", moves: []key.Key{keyDown, keyDown, keyDown, keyDown, keyDown, keyDown}, want: "50%"},
		{name: "index 1", moves: []key.Key{keyDown}, want: "14%"},
		{name: "index 12", moves: []key.Key{keyUp, keyUp}, want: "92%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := newFourteen()
			for _, k := range tt.moves {
				l.HandleKey(k)
			}
			if got := l.Progress(); got != tt.want {
				t.Errorf("Progress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectList_Render(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	l := newList(t, g, []string{"a", "b", "c"})

	if err := l.Render(); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// 24x40 puts the first option at row 12, column 9.
	wantLines := map[int]string{
		9:  "┌────────────┬───────┐",
		10: "│ Pick       │  TOP  │",
		11: "├─────┬──────┴───────┤",
		12: "│ ( ) │ a            │",
		15: "└─────┴──────────────┘",
	}
	for row, want := range wantLines {
		if got := g.Line(row); !strings.Contains(got, want) {
			t.Errorf("Line(%d) = %q, want it to contain %q", row, got, want)
		}
	}
	if !strings.Contains(g.Line(1), "1. Use up/k or down/j to move.") {
		t.Errorf("instructions missing: %q", g.Line(1))
	}
	if g.Flushes() != 1 {
		t.Errorf("Flushes() = %d, want 1", g.Flushes())
	}
}

func TestSelectList_RenderAttributes(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	l := newList(t, g, []string{"a", "b", "c"})

	l.HandleKey(keySpace) // mark "a" while hovering it
	l.HandleKey(keyDown)
	l.HandleKey(keyDown)
	l.HandleKey(keySpace) // mark "c", moving the mark
	l.HandleKey(keyUp)    // hover "b"
	if err := l.Render(); err != nil {
		t.Fatal(err)
	}

	const col = 10
	tests := []struct {
		row    int
		attr   tui.Attr
		marker string
	}{
		{row: 12, attr: tui.AttrNone, marker: "( ) │ a"},
		{row: 13, attr: tui.AttrUnderline, marker: "( ) │ b"},
		{row: 14, attr: tui.AttrReverse, marker: "(x) │ c"},
	}
	for _, tt := range tests {
		if got := g.Cell(tt.row, col).Attr; got != tt.attr {
			t.Errorf("row %d attr = %v, want %v", tt.row, got, tt.attr)
		}
		if !strings.Contains(g.Line(tt.row), tt.marker) {
			t.Errorf("row %d = %q, want %q", tt.row, g.Line(tt.row), tt.marker)
		}
	}

	l.HandleKey(keyDown) // hover the marked row
	if err := l.Render(); err != nil {
		t.Fatal(err)
	}
	if got := g.Cell(14, col).Attr; got != tui.AttrReverse|tui.AttrUnderline {
		t.Errorf("hovered marked row attr = %v, want reverse|underline", got)
	}
}

func TestSelectList_RenderTruncatesLongTitle(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	l, err := NewSelectList(g, "Client Form this is a super long text", numbered(3))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Render(); err != nil {
		t.Fatal(err)
	}
	if got := g.Line(10); !strings.Contains(got, "│ Client Fo… │  TOP  │") {
		t.Errorf("title row = %q", got)
	}
}

func TestSelectList_RenderWithoutInstructions(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	l := newList(t, g, numbered(3), WithInstructions(false))
	if err := l.Render(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(g.Line(1)); got != "" {
		t.Errorf("row 1 = %q, want blank", got)
	}
}

func TestSelectList_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		keys      []key.Key
		want      string
		cancelled bool
		wantErr   error
	}{
		{name: "confirm b", keys: []key.Key{keyDown, keySpace, keySpace}, want: "b"},
		{name: "wrap to c", keys: []key.Key{keyUp, keySpace, keySpace}, want: "c"},
		{name: "escape", keys: []key.Key{keyDown, keyEscape}, cancelled: true},
		{name: "script runs dry", keys: []key.Key{keySpace}, wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := tui.NewGrid(24, 40)
			g.Feed(tt.keys...)
			l := newList(t, g, []string{"a", "b", "c"})

			out, err := l.Run(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if out.Cancelled() != tt.cancelled {
				t.Errorf("Cancelled() = %v, want %v", out.Cancelled(), tt.cancelled)
			}
			if v, _ := out.Value(); v != tt.want {
				t.Errorf("Value() = %q, want %q", v, tt.want)
			}
			if _, _, visible := g.Cursor(); !visible {
				t.Error("cursor must be visible again after Run")
			}
		})
	}
}

func TestSelectList_RunHidesCursorWhileActive(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	l := newList(t, g, numbered(3))

	var seen []bool
	probe := &probeSurface{Grid: g, onFlush: func() {
		_, _, v := g.Cursor()
		seen = append(seen, v)
	}}
	l.surf = probe
	g.Feed(keyDown, keyEscape)

	if _, err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	for i, v := range seen {
		if v {
			t.Errorf("flush %d: cursor visible during Run", i)
		}
	}
}

func TestSelectList_RunFlushError(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	boom := errors.New("boom")
	g.FailFlush(boom)
	l := newList(t, g, numbered(3))

	if _, err := l.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

func TestSelectList_RunContextCancelled(t *testing.T) {
	t.Parallel()
	g := tui.NewGrid(24, 40)
	g.Feed(keyDown)
	l := newList(t, g, numbered(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestSelectList_CustomKeymap(t *testing.T) {
	t.Parallel()
	m := keymap.List()
	if err := m.Override(map[string][]string{"select": {"enter"}}); err != nil {
		t.Fatal(err)
	}
	l := newList(t, tui.NewGrid(24, 40), numbered(3), WithKeymap(m))

	l.HandleKey(keySpace)
	if _, ok := l.Selection().Marked(); ok {
		t.Error("space should no longer select")
	}
	l.HandleKey(keyEnter)
	if tr := l.HandleKey(keyEnter); tr != Confirm {
		t.Errorf("enter twice -> %v, want confirm", tr)
	}
}

func TestSelectList_OutcomePanicsWithoutMark(t *testing.T) {
	t.Parallel()
	l := newList(t, tui.NewGrid(24, 40), numbered(3))
	l.state = StateConfirmed

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a confirmed list with nothing marked")
		}
	}()
	l.Outcome()
}

// probeSurface observes each Flush of the wrapped grid.
type probeSurface struct {
	*tui.Grid
	onFlush func()
}

func (p *probeSurface) Flush() error {
	p.onFlush()
	return p.Grid.Flush()
}
