package executor

import (
	"bytes"
	"fmt"
)

// limitedBuffer keeps the first limit bytes of a stream and counts the rest.
type limitedBuffer struct {
	buf     bytes.Buffer
	limit   int
	dropped int64
}

func newLimitedBuffer(limit int64) *limitedBuffer {
	return &limitedBuffer{limit: int(limit)}
}

// Write never fails so the child is never blocked on a full pipe.
func (b *limitedBuffer) Write(p []byte) (int, error) {
	room := max(b.limit-b.buf.Len(), 0)
	keep := min(len(p), room)
	b.buf.Write(p[:keep])
	b.dropped += int64(len(p) - keep)
	return len(p), nil
}

// Truncated reports whether any output was dropped.
func (b *limitedBuffer) Truncated() bool {
	return b.dropped > 0
}

// String returns the kept output, followed by a note when some was dropped.
func (b *limitedBuffer) String() string {
	if b.dropped == 0 {
		return b.buf.String()
	}
	return fmt.Sprintf("%s\n[output truncated: %d bytes dropped]", b.buf.String(), b.dropped)
}
