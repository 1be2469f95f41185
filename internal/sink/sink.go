package sink

import "logsink/internal/event"

// Sink defines the behaviour expected from any destination log events are
// persisted to (a file, the console, a fan-out of several destinations,
// etc.).
//
// Implementations must serialize concurrent Emit calls so that no two
// renderings ever interleave in the output. Close releases underlying
// resources; it is not required to be safe against in-flight Emit calls,
// callers stop emitting before closing.
//
// Returning an error from Emit lets the host application decide whether a
// failed write is fatal; sinks themselves never retry.
type Sink interface {
	// Emit persists a single event and returns an error if the underlying
	// destination fails.
	Emit(evt *event.Event) error

	// Close flushes pending output and releases resources.
	Close() error
}
