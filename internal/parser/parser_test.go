package parser

import (
	"testing"

	"logsink/internal/event"
)

func TestParseLevelMarkers(t *testing.T) {
	p := New(event.LevelInfo)

	cases := []struct {
		line      string
		wantLevel event.Level
		wantMsg   string
	}{
		{"plain message", event.LevelInfo, "plain message"},
		{"ERROR: connection refused", event.LevelError, "connection refused"},
		{"warn: low disk space", event.LevelWarn, "low disk space"},
		{"[WARN] low disk space", event.LevelWarn, "low disk space"},
		{"[dbg] noisy detail", event.LevelDebug, "noisy detail"},
		{"INFO: all good", event.LevelInfo, "all good"},
		{"[weird] not a level", event.LevelInfo, "[weird] not a level"},
		{"http://example.com/path", event.LevelInfo, "http://example.com/path"},
		{"", event.LevelInfo, ""},
	}

	for _, tc := range cases {
		evt := p.Parse(tc.line)
		if evt.Level != tc.wantLevel {
			t.Errorf("Parse(%q) level = %s, want %s", tc.line, evt.Level, tc.wantLevel)
		}
		if evt.Message != tc.wantMsg {
			t.Errorf("Parse(%q) message = %q, want %q", tc.line, evt.Message, tc.wantMsg)
		}
		if evt.Timestamp.IsZero() {
			t.Errorf("Parse(%q) left the timestamp unset", tc.line)
		}
	}
}

func TestParseUsesConfiguredDefault(t *testing.T) {
	p := New(event.LevelWarn)
	if evt := p.Parse("unmarked"); evt.Level != event.LevelWarn {
		t.Errorf("level = %s, want warn", evt.Level)
	}
}
