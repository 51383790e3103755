// ABOUTME: Filter narrows an option set to the entries that fuzzy-match a pattern, best match first.
// ABOUTME: Options are matched on their fmt.Sprint label through sahilm/fuzzy.

package fuzzy

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"
)

// labels adapts an option slice to fuzzy.Source.
type labels []string

func (l labels) String(i int) string { return l[i] }
func (l labels) Len() int            { return len(l) }

// Filter returns the options whose labels match pattern, ranked by
// score. An empty pattern keeps every option in its original order.
func Filter[T any](pattern string, options []T) []T {
	if pattern == "" {
		return slices.Clone(options)
	}

	src := make(labels, len(options))
	for i, o := range options {
		src[i] = fmt.Sprint(o)
	}

	matches := fuzzy.FindFrom(pattern, src)
	out := make([]T, len(matches))
	for i, m := range matches {
		out[i] = options[m.Index]
	}
	return out
}
