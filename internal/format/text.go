package format

import (
	"fmt"
	"io"
	"sort"

	"logsink/internal/event"
)

// DefaultTimestampLayout is used by TextFormatter when no layout is supplied.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// TextFormatter renders events as single human-readable lines:
//
//	2024-01-01 12:00:00 [INF] hello key=value
//
// Fields are appended in sorted key order so output is deterministic.
type TextFormatter struct {
	layout string
}

// NewText builds a TextFormatter. An empty layout selects
// DefaultTimestampLayout.
func NewText(layout string) *TextFormatter {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return &TextFormatter{layout: layout}
}

func (f *TextFormatter) Format(evt *event.Event, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s [%s] %s", evt.Timestamp.Format(f.layout), evt.Level.Tag(), evt.Message); err != nil {
		return err
	}

	if len(evt.Fields) > 0 {
		keys := make([]string, 0, len(evt.Fields))
		for k := range evt.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, " %s=%s", k, evt.Fields[k]); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}
