package format

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"logsink/internal/event"
)

func sampleEvent() *event.Event {
	return &event.Event{
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     event.LevelInfo,
		Message:   "hello",
	}
}

func TestTextFormatterLine(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText("").Format(sampleEvent(), &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	want := "2024-01-01 12:00:00 [INF] hello\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextFormatterFieldsSorted(t *testing.T) {
	evt := sampleEvent()
	evt.Level = event.LevelError
	evt.Fields = map[string]string{"zone": "eu", "app": "api"}

	var buf bytes.Buffer
	if err := NewText("").Format(evt, &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	want := "2024-01-01 12:00:00 [ERR] hello app=api zone=eu\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextFormatterCustomLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(time.RFC3339).Format(sampleEvent(), &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	want := "2024-01-01T12:00:00Z [INF] hello\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatterLine(t *testing.T) {
	evt := sampleEvent()
	evt.Level = event.LevelWarn
	evt.Fields = map[string]string{"app": "api"}

	var buf bytes.Buffer
	if err := NewJSON().Format(evt, &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	line := buf.String()
	if line[len(line)-1] != '\n' {
		t.Fatalf("rendering is not newline-terminated: %q", line)
	}

	var decoded struct {
		Timestamp string            `json:"ts"`
		Level     string            `json:"level"`
		Message   string            `json:"msg"`
		Fields    map[string]string `json:"fields"`
	}
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Level != "warn" || decoded.Message != "hello" || decoded.Fields["app"] != "api" {
		t.Errorf("unexpected decoded event: %+v", decoded)
	}
	if decoded.Timestamp != "2024-01-01T12:00:00Z" {
		t.Errorf("timestamp %q, want RFC 3339", decoded.Timestamp)
	}
}

func TestJSONFormatterDefaultsEmptyLevel(t *testing.T) {
	evt := sampleEvent()
	evt.Level = ""

	var buf bytes.Buffer
	if err := NewJSON().Format(evt, &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["level"] != "info" {
		t.Errorf("level = %v, want info", decoded["level"])
	}
}
