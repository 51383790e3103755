// ABOUTME: Construction errors for widgets.
// ABOUTME: ConfigError carries the widget and surface size and unwraps to a sentinel for errors.Is.

package component

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOptions is returned when a select list is built with no options.
	ErrNoOptions = errors.New("no options to choose from")
	// ErrSurfaceTooSmall is returned when the widget's frame does not fit.
	ErrSurfaceTooSmall = errors.New("surface too small")
)

// ConfigError reports a widget that cannot be constructed.
type ConfigError struct {
	Widget string
	Rows   int
	Cols   int
	Err    error
}

func (e *ConfigError) Error() string {
	if errors.Is(e.Err, ErrSurfaceTooSmall) {
		return fmt.Sprintf("%s: %v (%dx%d)", e.Widget, e.Err, e.Cols, e.Rows)
	}
	return fmt.Sprintf("%s: %v", e.Widget, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
