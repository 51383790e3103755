// ABOUTME: Defines the Key type and ParseKey for terminal keyboard input parsing.
// ABOUTME: Handles printable runes, control characters, and delegates escape sequences to the legacy table.

package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events a widget can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return / Line feed
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlA                    // Ctrl+A
	KeyCtrlB                    // Ctrl+B
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyCtrlE                    // Ctrl+E
	KeyCtrlF                    // Ctrl+F
	KeyCtrlH                    // Ctrl+H / ASCII BS
	KeyCtrlK                    // Ctrl+K
	KeyCtrlN                    // Ctrl+N
	KeyCtrlP                    // Ctrl+P
	KeyCtrlU                    // Ctrl+U
	KeyCtrlY                    // Ctrl+Y
	KeyCtrlZ                    // Ctrl+Z
	KeyUnknown                  // Unrecognized input
)

// ctrlKeys maps control byte values (0x01..0x1A) to their Key representations.
var ctrlKeys = map[byte]Key{
	0x01: {Type: KeyCtrlA, Ctrl: true},
	0x02: {Type: KeyCtrlB, Ctrl: true},
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x04: {Type: KeyCtrlD, Ctrl: true},
	0x05: {Type: KeyCtrlE, Ctrl: true},
	0x06: {Type: KeyCtrlF, Ctrl: true},
	0x08: {Type: KeyCtrlH, Ctrl: true},
	0x0b: {Type: KeyCtrlK, Ctrl: true},
	0x0e: {Type: KeyCtrlN, Ctrl: true},
	0x10: {Type: KeyCtrlP, Ctrl: true},
	0x15: {Type: KeyCtrlU, Ctrl: true},
	0x19: {Type: KeyCtrlY, Ctrl: true},
	0x1a: {Type: KeyCtrlZ, Ctrl: true},
}

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	// Multi-byte UTF-8 rune
	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) || !unicode.IsPrint(r) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d, b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves ESC-prefixed data against the legacy table.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// IsPrintable reports whether k should be inserted as text.
func (k Key) IsPrintable() bool {
	return k.Type == KeyRune && !k.Alt && !k.Ctrl && unicode.IsPrint(k.Rune)
}

// keyTypeNames provides the binding names used by keymaps and debug output.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEscape:    "escape",
	KeyCtrlA:     "ctrl+a",
	KeyCtrlB:     "ctrl+b",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlD:     "ctrl+d",
	KeyCtrlE:     "ctrl+e",
	KeyCtrlF:     "ctrl+f",
	KeyCtrlH:     "ctrl+h",
	KeyCtrlK:     "ctrl+k",
	KeyCtrlN:     "ctrl+n",
	KeyCtrlP:     "ctrl+p",
	KeyCtrlU:     "ctrl+u",
	KeyCtrlY:     "ctrl+y",
	KeyCtrlZ:     "ctrl+z",
}

// Name returns the canonical binding name for k, e.g. "up", "ctrl+c",
// "space", "j" or "alt+x". Unknown keys return "".
func (k Key) Name() string {
	if k.Type == KeyRune {
		s := string(k.Rune)
		if k.Rune == ' ' {
			s = "space"
		}
		if k.Alt {
			s = "alt+" + s
		}
		return s
	}
	return keyTypeNames[k.Type]
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if name := k.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("unknown(%d)", k.Type)
}
