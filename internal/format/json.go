package format

import (
	"encoding/json"
	"io"
	"time"

	"logsink/internal/event"
)

// JSONFormatter renders each event as one JSON object per line. Timestamps
// are emitted in RFC 3339 with sub-second precision.
type JSONFormatter struct{}

// NewJSON builds a JSONFormatter.
func NewJSON() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonEvent is the wire shape; it keeps the on-disk field names stable
// independently of the internal struct.
type jsonEvent struct {
	Timestamp string            `json:"ts"`
	Level     string            `json:"level"`
	Message   string            `json:"msg"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func (f *JSONFormatter) Format(evt *event.Event, w io.Writer) error {
	level := evt.Level
	if level == "" {
		level = event.LevelInfo
	}
	// Encode appends the trailing newline required by the sink contract.
	return json.NewEncoder(w).Encode(jsonEvent{
		Timestamp: evt.Timestamp.Format(time.RFC3339Nano),
		Level:     string(level),
		Message:   evt.Message,
		Fields:    evt.Fields,
	})
}
