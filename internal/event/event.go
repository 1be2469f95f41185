package event

import "time"

// Level classifies the severity of an event. The zero value is treated as
// LevelInfo by formatters.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Tag returns the fixed three-letter marker used in text renderings.
func (l Level) Tag() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "INF"
	}
}

// Event is a single structured log record ready to be persisted.
// Fields carries optional key/value context attached to the message; sinks
// and formatters must not mutate it.
//
// The struct is deliberately small: richer representations (caller info,
// exception chains, etc.) can be layered on top later without breaking the
// sink contract.
type Event struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Fields    map[string]string
}
