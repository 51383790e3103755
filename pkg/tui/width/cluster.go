// ABOUTME: Clusters splits text into the units a cell grid draws: one grapheme per entry with its cell width.
// ABOUTME: Input is NFC-normalised and stripped of escape sequences first so decomposed accents collapse into one cell.

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Cluster is one user-perceived character.
type Cluster struct {
	Text  string // the full grapheme
	Rune  rune   // its first code point, the one a single cell stores
	Width int    // 0, 1 or 2 cells
}

// Clusters segments s for drawing. Control characters have width zero.
func Clusters(s string) []Cluster {
	s = norm.NFC.String(StripANSI(s))
	if s == "" {
		return nil
	}

	out := make([]Cluster, 0, len(s))
	state := -1
	for len(s) > 0 {
		var g string
		g, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(g)
		out = append(out, Cluster{Text: g, Rune: r, Width: runewidth.RuneWidth(r)})
	}
	return out
}
