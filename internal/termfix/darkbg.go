// ABOUTME: Fixes the lipgloss background guess before Bubble Tea's init runs its terminal queries
// ABOUTME: Imported blank by cmd/termform ahead of every package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background, lipgloss skips the OSC 10/11 query
	// whose late reply would otherwise arrive as key input in a widget.
	// This package must not import bubbletea, directly or not, so that
	// this init runs first.
	lipgloss.SetHasDarkBackground(true)
}
