package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"logsink/internal/event"
	"logsink/internal/format"
	"logsink/internal/selflog"
)

// Encoding selects how the output file is primed when it is created empty.
type Encoding string

const (
	// EncodingUTF8 writes plain UTF-8 with no byte-order mark. The default.
	EncodingUTF8 Encoding = "utf8"
	// EncodingUTF8BOM prefixes a fresh file with the UTF-8 byte-order mark.
	EncodingUTF8BOM Encoding = "utf8bom"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileOptions carries the optional knobs for NewFileSink.
type FileOptions struct {
	// SizeLimit caps the total size of the file in bytes. nil means
	// unbounded; a negative value is rejected at construction. Once the cap
	// is reached further output is dropped silently, it is not an error.
	SizeLimit *int64

	// Encoding defaults to EncodingUTF8 when empty.
	Encoding Encoding

	// Buffered skips the per-event flush. Output is only guaranteed on disk
	// after Close.
	Buffered bool
}

// FileSink appends formatted events to a single file. The file is opened
// once at construction and owned for the sink's whole lifetime; at most one
// sink instance must write to a given file.
//
// Emit calls from any number of goroutines are serialized under one mutex,
// held across the full format-plus-flush sequence, so events land in the
// file whole and in lock-acquisition order.
type FileSink struct {
	file      *os.File
	buf       *bufio.Writer
	out       io.Writer // buf, or a BoundedWriter above it
	formatter format.Formatter
	buffered  bool
	mu        sync.Mutex
}

// NewFileSink opens (creating if needed) the file at path in append mode and
// returns a sink writing through the given formatter.
//
// The parent directory is created best-effort: a failure there is only
// reported through selflog, because the file open that follows fails loudly
// on its own when the directory truly cannot exist.
func NewFileSink(path string, f format.Formatter, opts FileOptions) (*FileSink, error) {
	if path == "" {
		return nil, errors.New("file sink: path is required")
	}
	if f == nil {
		return nil, errors.New("file sink: formatter is required")
	}
	if opts.SizeLimit != nil && *opts.SizeLimit < 0 {
		return nil, fmt.Errorf("file sink: size limit must be non-negative, got %d", *opts.SizeLimit)
	}
	switch opts.Encoding {
	case "", EncodingUTF8, EncodingUTF8BOM:
	default:
		return nil, fmt.Errorf("file sink: unsupported encoding %q", opts.Encoding)
	}

	if dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			selflog.Warnf("file sink: could not create directory %s: %v", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file sink: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("file sink: stat %s: %w", path, err)
	}
	size := info.Size()

	if opts.Encoding == EncodingUTF8BOM && size == 0 {
		if _, err := file.Write(utf8BOM); err != nil {
			file.Close()
			return nil, fmt.Errorf("file sink: write byte-order mark: %w", err)
		}
		size = int64(len(utf8BOM))
	}

	buf := bufio.NewWriter(file)
	var out io.Writer = buf
	if opts.SizeLimit != nil {
		remaining := *opts.SizeLimit - size
		if remaining < 0 {
			remaining = 0
		}
		out = NewBoundedWriter(buf, remaining)
	}

	return &FileSink{
		file:      file,
		buf:       buf,
		out:       out,
		formatter: f,
		buffered:  opts.Buffered,
	}, nil
}

// Emit renders one event into the file. Unless the sink is buffered the
// rendering is flushed to the OS before Emit returns. Disk failures
// propagate to the caller; the sink does not retry or reopen the file.
func (s *FileSink) Emit(evt *event.Event) error {
	if evt == nil {
		return errors.New("file sink: nil event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.formatter.Format(evt, s.out); err != nil {
		return fmt.Errorf("file sink: format event: %w", err)
	}
	if !s.buffered {
		if err := s.buf.Flush(); err != nil {
			return fmt.Errorf("file sink: flush: %w", err)
		}
	}
	return nil
}

// Close flushes buffered output and releases the file handle. It takes no
// lock: callers must make sure no Emit is in flight, and a closed sink must
// not be reused.
func (s *FileSink) Close() error {
	if err := s.buf.Flush(); err != nil {
		s.file.Close()
		return fmt.Errorf("file sink: flush: %w", err)
	}
	return s.file.Close()
}
