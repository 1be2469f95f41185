package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	yaml "gopkg.in/yaml.v2"

	"logsink/internal/event"
)

// DefaultSizeLimit is applied to file sinks whose size_limit key is absent.
// An explicit "none" disables the cap entirely.
const DefaultSizeLimit = "1GiB"

// noLimit is the size_limit value that disables capping.
const noLimit = "none"

type SinkConfig struct {
	Type string      `yaml:"type"` // "file", "console"
	File *FileConfig `yaml:"file,omitempty"`
}

type FileConfig struct {
	Path string `yaml:"path"`
	// SizeLimit is a human-readable byte count ("512KB", "1GiB") or "none".
	// Absent means DefaultSizeLimit.
	SizeLimit string `yaml:"size_limit"`
	Encoding  string `yaml:"encoding"` // "utf8" (default) or "utf8bom"
	Buffered  bool   `yaml:"buffered"`
}

type FormatConfig struct {
	Type string `yaml:"type"` // "text" (default) or "json"
	// TimestampLayout is a Go time layout used by the text format.
	TimestampLayout string `yaml:"timestamp_layout"`
}

type Config struct {
	// Level is assigned to input lines that carry no recognizable level
	// marker of their own.
	Level  string       `yaml:"level"`
	Format FormatConfig `yaml:"format"`
	Sinks  []SinkConfig `yaml:"sinks"`
}

// Load reads and unmarshals the configuration file located at the given
// path, validating it and filling in defaults.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Default level when not provided.
	if cfg.Level == "" {
		cfg.Level = string(event.LevelInfo)
	}
	switch event.Level(cfg.Level) {
	case event.LevelDebug, event.LevelInfo, event.LevelWarn, event.LevelError:
	default:
		return nil, fmt.Errorf("unsupported level: %s", cfg.Level)
	}

	switch cfg.Format.Type {
	case "":
		cfg.Format.Type = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("unsupported format type: %s", cfg.Format.Type)
	}

	// Ensure we have at least one sink.
	if len(cfg.Sinks) == 0 {
		return nil, fmt.Errorf("at least one sink must be defined")
	}

	for i, s := range cfg.Sinks {
		switch s.Type {
		case "file":
			if s.File == nil || s.File.Path == "" {
				return nil, fmt.Errorf("sink at index %d: file.path is required when sink type is file", i)
			}
			if s.File.SizeLimit == "" {
				cfg.Sinks[i].File.SizeLimit = DefaultSizeLimit
			}
			// Validate the size early so a typo fails at load, not at sink
			// construction.
			if _, err := cfg.Sinks[i].File.SizeLimitBytes(); err != nil {
				return nil, fmt.Errorf("sink at index %d: %w", i, err)
			}
		case "console":
		default:
			return nil, fmt.Errorf("unsupported sink type: %s", s.Type)
		}
	}

	return &cfg, nil
}

// SizeLimitBytes resolves the configured size limit. A nil result means the
// file may grow unbounded.
func (f *FileConfig) SizeLimitBytes() (*int64, error) {
	if f.SizeLimit == "" || f.SizeLimit == noLimit {
		return nil, nil
	}
	n, err := humanize.ParseBytes(f.SizeLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid size_limit %q: %w", f.SizeLimit, err)
	}
	limit := int64(n)
	return &limit, nil
}
