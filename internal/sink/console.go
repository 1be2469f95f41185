package sink

import (
	"errors"
	"io"
	"os"
	"sync"

	"logsink/internal/event"
	"logsink/internal/format"
)

// ConsoleSink writes formatted events to standard output.
type ConsoleSink struct {
	out       io.Writer
	formatter format.Formatter
	mu        sync.Mutex
}

// NewConsoleSink creates a sink writing to stdout through the given
// formatter.
func NewConsoleSink(f format.Formatter) (*ConsoleSink, error) {
	if f == nil {
		return nil, errors.New("console sink: formatter is required")
	}
	return &ConsoleSink{out: os.Stdout, formatter: f}, nil
}

func (s *ConsoleSink) Emit(evt *event.Event) error {
	if evt == nil {
		return errors.New("console sink: nil event")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formatter.Format(evt, s.out)
}

// Close is a no-op; stdout is not ours to close.
func (s *ConsoleSink) Close() error {
	return nil
}
