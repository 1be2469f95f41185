package parser

import (
	"strings"
	"time"

	"logsink/internal/event"
)

// Parser turns raw input lines into structured events. A leading level
// marker ("ERROR: ...", "[warn] ...") is recognized best-effort; anything
// unrecognizable degrades to the configured default level rather than being
// treated as an error, so no input line is ever lost.
type Parser struct {
	defaultLevel event.Level
	now          func() time.Time
}

var levelTokens = map[string]event.Level{
	"DEBUG":   event.LevelDebug,
	"DBG":     event.LevelDebug,
	"INFO":    event.LevelInfo,
	"INF":     event.LevelInfo,
	"WARN":    event.LevelWarn,
	"WARNING": event.LevelWarn,
	"WRN":     event.LevelWarn,
	"ERROR":   event.LevelError,
	"ERR":     event.LevelError,
}

// New builds a Parser assigning defaultLevel to unmarked lines.
func New(defaultLevel event.Level) *Parser {
	return &Parser{defaultLevel: defaultLevel, now: time.Now}
}

// Parse converts one line into an event, stamped with the current time.
func (p *Parser) Parse(line string) *event.Event {
	level := p.defaultLevel
	msg := line

	if rest, ok := strings.CutPrefix(line, "["); ok {
		if tag, tail, found := strings.Cut(rest, "]"); found {
			if lv, known := levelTokens[strings.ToUpper(strings.TrimSpace(tag))]; known {
				level = lv
				msg = strings.TrimLeft(tail, " ")
			}
		}
	} else if tag, tail, found := strings.Cut(line, ":"); found {
		if lv, known := levelTokens[strings.ToUpper(strings.TrimSpace(tag))]; known {
			level = lv
			msg = strings.TrimLeft(tail, " ")
		}
	}

	return &event.Event{
		Timestamp: p.now(),
		Level:     level,
		Message:   msg,
	}
}
