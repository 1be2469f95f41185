package format

import (
	"io"

	"logsink/internal/event"
)

// Formatter renders one event as text into the given writer. Implementations
// must write a complete, newline-terminated representation of the event and
// must not retain the writer between calls.
//
// Formatters are not required to be goroutine-safe on their own; sinks
// serialize calls under their own lock.
type Formatter interface {
	Format(evt *event.Event, w io.Writer) error
}
