// ABOUTME: Functional options shared by the select list and the line editor.
// ABOUTME: Each widget starts from its own default keymap when none is supplied.

package component

import "github.com/mauromedda/termform/pkg/tui/keymap"

type options struct {
	keys         *keymap.Map
	instructions bool
	initial      string
}

// Option configures a widget at construction.
type Option func(*options)

// WithKeymap replaces the widget's default key bindings.
func WithKeymap(m *keymap.Map) Option {
	return func(o *options) { o.keys = m }
}

// WithInstructions turns the key help in the top-left corner on or off.
// It is on by default.
func WithInstructions(show bool) Option {
	return func(o *options) { o.instructions = show }
}

// WithInitialText pre-fills a line editor, cursor at the end. Select
// lists ignore it.
func WithInitialText(s string) Option {
	return func(o *options) { o.initial = s }
}

func buildOptions(opts []Option, defaults func() *keymap.Map) options {
	o := options{instructions: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.keys == nil {
		o.keys = defaults()
	}
	return o
}
