package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sinks:
  - type: file
    file:
      path: logs/app.log
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Level)
	}
	if cfg.Format.Type != "text" {
		t.Errorf("format type = %q, want text", cfg.Format.Type)
	}
	if cfg.Sinks[0].File.SizeLimit != DefaultSizeLimit {
		t.Errorf("size limit = %q, want %q", cfg.Sinks[0].File.SizeLimit, DefaultSizeLimit)
	}
	limit, err := cfg.Sinks[0].File.SizeLimitBytes()
	if err != nil {
		t.Fatalf("SizeLimitBytes() error: %v", err)
	}
	if limit == nil || *limit != 1<<30 {
		t.Errorf("default limit = %v, want 1GiB", limit)
	}
}

func TestLoadParsesHumanSizes(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sinks:
  - type: file
    file:
      path: app.log
      size_limit: 512KB
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	limit, err := cfg.Sinks[0].File.SizeLimitBytes()
	if err != nil {
		t.Fatal(err)
	}
	if limit == nil || *limit != 512_000 {
		t.Errorf("limit = %v, want 512000", limit)
	}
}

func TestLoadNoneDisablesLimit(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sinks:
  - type: file
    file:
      path: app.log
      size_limit: none
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	limit, err := cfg.Sinks[0].File.SizeLimitBytes()
	if err != nil {
		t.Fatal(err)
	}
	if limit != nil {
		t.Errorf("limit = %d, want unbounded", *limit)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"no sinks",
			`level: info`,
			"at least one sink",
		},
		{
			"unknown sink type",
			"sinks:\n  - type: carrier-pigeon",
			"unsupported sink type",
		},
		{
			"file sink without path",
			"sinks:\n  - type: file",
			"file.path is required",
		},
		{
			"bad size limit",
			"sinks:\n  - type: file\n    file:\n      path: a.log\n      size_limit: huge",
			"invalid size_limit",
		},
		{
			"bad level",
			"level: loud\nsinks:\n  - type: console",
			"unsupported level",
		},
		{
			"bad format",
			"format:\n  type: xml\nsinks:\n  - type: console",
			"unsupported format type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
