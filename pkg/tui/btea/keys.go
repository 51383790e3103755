// ABOUTME: Translates Bubble Tea key messages into the decoder's key model.
// ABOUTME: Keymaps therefore bind the same names under every backend.

package btea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termform/pkg/tui/key"
)

var namedKeys = map[tea.KeyType]key.Key{
	tea.KeyEnter:     {Type: key.KeyEnter},
	tea.KeyCtrlJ:     {Type: key.KeyEnter},
	tea.KeyTab:       {Type: key.KeyTab},
	tea.KeyShiftTab:  {Type: key.KeyBackTab, Shift: true},
	tea.KeyBackspace: {Type: key.KeyBackspace},
	tea.KeyCtrlH:     {Type: key.KeyCtrlH, Ctrl: true},
	tea.KeyDelete:    {Type: key.KeyDelete},
	tea.KeyUp:        {Type: key.KeyUp},
	tea.KeyDown:      {Type: key.KeyDown},
	tea.KeyLeft:      {Type: key.KeyLeft},
	tea.KeyRight:     {Type: key.KeyRight},
	tea.KeyHome:      {Type: key.KeyHome},
	tea.KeyEnd:       {Type: key.KeyEnd},
	tea.KeyPgUp:      {Type: key.KeyPageUp},
	tea.KeyPgDown:    {Type: key.KeyPageDown},
	tea.KeyEsc:       {Type: key.KeyEscape},
	tea.KeyCtrlA:     {Type: key.KeyCtrlA, Ctrl: true},
	tea.KeyCtrlB:     {Type: key.KeyCtrlB, Ctrl: true},
	tea.KeyCtrlC:     {Type: key.KeyCtrlC, Ctrl: true},
	tea.KeyCtrlD:     {Type: key.KeyCtrlD, Ctrl: true},
	tea.KeyCtrlE:     {Type: key.KeyCtrlE, Ctrl: true},
	tea.KeyCtrlF:     {Type: key.KeyCtrlF, Ctrl: true},
	tea.KeyCtrlK:     {Type: key.KeyCtrlK, Ctrl: true},
	tea.KeyCtrlN:     {Type: key.KeyCtrlN, Ctrl: true},
	tea.KeyCtrlP:     {Type: key.KeyCtrlP, Ctrl: true},
	tea.KeyCtrlU:     {Type: key.KeyCtrlU, Ctrl: true},
	tea.KeyCtrlY:     {Type: key.KeyCtrlY, Ctrl: true},
	tea.KeyCtrlZ:     {Type: key.KeyCtrlZ, Ctrl: true},
}

// convertKey returns the keys carried by msg. A KeyRunes message may
// hold several runes when input arrives in one burst, such as a paste.
func convertKey(msg tea.KeyMsg) []key.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]key.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, key.Key{Type: key.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return keys
	case tea.KeySpace:
		return []key.Key{{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}}
	}

	k, ok := namedKeys[msg.Type]
	if !ok {
		return []key.Key{{Type: key.KeyUnknown}}
	}
	k.Alt = msg.Alt
	return []key.Key{k}
}
