// ABOUTME: Model hosts a component.Widget inside a Bubble Tea program.
// ABOUTME: The widget draws on an in-memory tui.Grid; View turns the grid cells into styled lines.

package btea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termform/pkg/tui"
	"github.com/mauromedda/termform/pkg/tui/component"
	"github.com/mauromedda/termform/pkg/tui/internal/pool"
)

// Model is a tea.Model driving one widget until it confirms or aborts.
// The widget must have been built over grid.
type Model struct {
	grid   *tui.Grid
	widget component.Widget
	done   bool
	err    error
}

// New renders the widget's first frame and returns the model.
func New(grid *tui.Grid, w component.Widget) Model {
	m := Model{grid: grid, widget: w}
	m.err = w.Render()
	return m
}

// Init returns nil; the first frame is drawn by New.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update feeds key messages to the widget and quits once it leaves the
// active state or fails to render.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.done || m.err != nil {
		return m, nil
	}
	for _, k := range convertKey(km) {
		if m.widget.HandleKey(k) != component.Continue {
			m.done = true
			return m, tea.Quit
		}
	}
	if err := m.widget.Render(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// View renders the grid. Runs of cells sharing an attribute are styled
// together and the cursor, when shown, is drawn reversed.
func (m Model) View() string {
	if m.done {
		return ""
	}
	rows, _ := m.grid.Size()
	curRow, curCol, curVisible := m.grid.Cursor()

	lines := make([]string, rows)
	for r := range rows {
		cells := m.grid.Row(r)
		if curVisible && r == curRow && curCol >= 0 && curCol < len(cells) {
			cells[curCol].Attr |= tui.AttrReverse
		}
		lines[r] = renderRow(cells)
	}
	return strings.Join(lines, "\n")
}

func renderRow(cells []tui.Cell) string {
	b, run := pool.Builder(), pool.Builder()
	defer pool.PutBuilder(b)
	defer pool.PutBuilder(run)

	var cur tui.Attr
	emit := func() {
		if run.Len() == 0 {
			return
		}
		if cur == tui.AttrNone {
			b.WriteString(run.String())
		} else {
			b.WriteString(styleFor(cur).Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range cells {
		if c.Rune == tui.Continuation {
			continue
		}
		if c.Attr != cur {
			emit()
			cur = c.Attr
		}
		run.WriteRune(c.Rune)
	}
	emit()
	return b.String()
}

// Done reports whether the widget confirmed or aborted.
func (m Model) Done() bool { return m.done }

// Err returns the render error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Run drives w in a full-screen Bubble Tea program until it finishes
// or ctx is cancelled. The outcome is read from the widget afterwards.
func Run(ctx context.Context, grid *tui.Grid, w component.Widget, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(grid, w), opts...)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return fmt.Errorf("running bubbletea program: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
