// ABOUTME: Lipgloss styles for each cell attribute combination the widgets draw with.
// ABOUTME: Styles are built once per Attr value and cached for the life of the process.

package btea

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termform/pkg/tui"
)

var styleCache sync.Map // tui.Attr -> lipgloss.Style

// styleFor returns the lipgloss style that renders attr.
func styleFor(attr tui.Attr) lipgloss.Style {
	if v, ok := styleCache.Load(attr); ok {
		return v.(lipgloss.Style)
	}
	st := lipgloss.NewStyle().
		Bold(attr&tui.AttrBold != 0).
		Faint(attr&tui.AttrDim != 0).
		Underline(attr&tui.AttrUnderline != 0).
		Reverse(attr&tui.AttrReverse != 0)
	styleCache.Store(attr, st)
	return st
}
