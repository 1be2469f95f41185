package sink

import (
	"fmt"
	"strings"

	"logsink/internal/event"
)

// MultiSink broadcasts every event to a set of sinks. A failing sink does
// not stop delivery to the others; all failures are aggregated into one
// error.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a fan-out over the given sinks.
func NewMultiSink(sinks []Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Emit(evt *event.Event) error {
	var errs []string
	for _, sk := range s.sinks {
		if err := sk.Emit(evt); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multi sink: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (s *MultiSink) Close() error {
	var errs []string
	for _, sk := range s.sinks {
		if err := sk.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multi sink close: %s", strings.Join(errs, "; "))
	}
	return nil
}
