// ABOUTME: RestoreOnPanic recovers from panics, releases the terminal session, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the session.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// exit is swapped out by tests.
var exit = os.Exit

// RestoreOnPanic should be deferred right after Acquire. On panic it
// releases the session, prints the panic value and stack trace to stderr,
// then exits with code 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}
	reportPanic(s, r, os.Stderr)
	exit(1)
}

func reportPanic(s *Session, r any, w io.Writer) {
	_ = s.Release()
	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, debug.Stack())
}
