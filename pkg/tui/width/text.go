// ABOUTME: Fitting helpers for fixed-width cells: Truncate with an ellipsis, PadRight, and word Wrap.
// ABOUTME: All measure with Clusters, so wide characters are never split across the limit.

package width

import "strings"

const ellipsis = "…"

// Truncate shortens s to at most maxWidth cells, ending in an ellipsis
// when anything was cut. Escape sequences are dropped.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = StripANSI(s)
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	col := 0
	for _, c := range Clusters(s) {
		if col+c.Width > maxWidth-1 {
			break
		}
		b.WriteString(c.Text)
		col += c.Width
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight appends spaces until s is exactly w cells wide, truncating
// first if it is already wider.
func PadRight(s string, w int) string {
	s = Truncate(s, w)
	if n := w - VisibleWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Wrap breaks s into lines of at most maxWidth cells. Lines break at
// spaces where possible; a word longer than maxWidth is split. Explicit
// newlines are kept.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(StripANSI(s), "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		col   int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
	}

	for _, word := range words {
		ww := VisibleWidth(word)
		if col > 0 && col+1+ww > maxWidth {
			flush()
		}
		if col > 0 {
			line.WriteByte(' ')
			col++
		}
		if ww <= maxWidth-col {
			line.WriteString(word)
			col += ww
			continue
		}
		for _, c := range Clusters(word) {
			if col+c.Width > maxWidth {
				flush()
			}
			line.WriteString(c.Text)
			col += c.Width
		}
	}
	if col > 0 {
		flush()
	}
	return lines
}
