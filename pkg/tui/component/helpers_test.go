// ABOUTME: Key constructors shared by the widget tests.
// ABOUTME: Values mirror what the input decoder produces for each key.

package component

import "github.com/mauromedda/termform/pkg/tui/key"

var (
	keyUp        = key.Key{Type: key.KeyUp}
	keyDown      = key.Key{Type: key.KeyDown}
	keyLeft      = key.Key{Type: key.KeyLeft}
	keyRight     = key.Key{Type: key.KeyRight}
	keySpace     = key.Key{Type: key.KeyRune, Rune: ' '}
	keyEnter     = key.Key{Type: key.KeyEnter}
	keyEscape    = key.Key{Type: key.KeyEscape}
	keyCtrlC     = key.Key{Type: key.KeyCtrlC, Ctrl: true}
	keyCtrlH     = key.Key{Type: key.KeyCtrlH, Ctrl: true}
	keyBackspace = key.Key{Type: key.KeyBackspace}
	keyDelete    = key.Key{Type: key.KeyDelete}
)

func runeKey(r rune) key.Key {
	return key.Key{Type: key.KeyRune, Rune: r}
}
