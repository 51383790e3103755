// ABOUTME: Defines the Terminal interface for raw mode, size queries, input and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, reading key bytes and writing output. Resizing is not
// observed; callers query Size once per interaction.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
