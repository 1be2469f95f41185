package sink

import "io"

// flusher is satisfied by buffered writers that can push pending bytes to
// their destination.
type flusher interface {
	Flush() error
}

// BoundedWriter decorates any io.Writer with a hard byte budget. Once the
// budget is exhausted further writes are dropped silently: the caller still
// sees full success, because logging overflowing a size cap must never crash
// the application. Errors are only reported when the underlying writer
// itself fails.
//
// The budget counts encoded bytes exactly, since Go writers are byte
// streams. BoundedWriter is not goroutine-safe; the owning sink provides the
// locking.
type BoundedWriter struct {
	w         io.Writer
	remaining int64
}

// NewBoundedWriter wraps w with the given remaining byte budget. A negative
// budget is clamped to zero, which makes every write a no-op.
func NewBoundedWriter(w io.Writer, remaining int64) *BoundedWriter {
	if remaining < 0 {
		remaining = 0
	}
	return &BoundedWriter{w: w, remaining: remaining}
}

// Write emits as much of p as the budget allows. When p fits partially only
// the prefix is written; when the budget is spent the call reports len(p)
// bytes written without touching the underlying writer.
func (b *BoundedWriter) Write(p []byte) (int, error) {
	if b.remaining <= 0 {
		return len(p), nil
	}
	if int64(len(p)) > b.remaining {
		n, err := b.w.Write(p[:b.remaining])
		b.remaining -= int64(n)
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
	n, err := b.w.Write(p)
	b.remaining -= int64(n)
	return n, err
}

// WriteString implements io.StringWriter.
func (b *BoundedWriter) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

// Flush pushes pending bytes through the underlying writer when it is
// buffered. The budget is not involved.
func (b *BoundedWriter) Flush() error {
	if f, ok := b.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Remaining reports how many more bytes may still reach the underlying
// writer.
func (b *BoundedWriter) Remaining() int64 {
	return b.remaining
}
