// ABOUTME: Pooled byte buffers and string builders for per-frame rendering
// ABOUTME: The ANSI screen builds each frame in a pooled buffer; the Bubble Tea view builds rows in pooled builders

package pool

import (
	"bytes"
	"strings"
	"sync"
)

// maxRetained caps the capacity of buffers returned to the pool so one
// huge frame does not pin its memory forever.
const maxRetained = 1 << 20

var buffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Buffer returns an empty buffer from the pool.
func Buffer() *bytes.Buffer {
	buf := buffers.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxRetained {
		return
	}
	buf.Reset()
	buffers.Put(buf)
}

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// Builder returns an empty string builder from the pool.
func Builder() *strings.Builder {
	sb := builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutBuilder returns sb to the pool.
func PutBuilder(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxRetained {
		return
	}
	sb.Reset()
	builders.Put(sb)
}
