package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/pdfoutline/ocr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.InputDir != "input" || cfg.OutputDir != "output" {
		t.Errorf("dirs = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.OCR.Scale != 2.0 {
		t.Errorf("OCR.Scale = %v, want 2", cfg.OCR.Scale)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		path := writeConfig(t, `
input_dir: /data/in
output_dir: /data/out
workers: 4
timeout: 90s
ocr:
  scale: 3
  language: jpn
log:
  level: debug
  format: json
`)
		cm, err := NewManager(path)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}
		cfg := cm.Get()
		if cfg.InputDir != "/data/in" || cfg.OutputDir != "/data/out" {
			t.Errorf("dirs = %q, %q", cfg.InputDir, cfg.OutputDir)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
		if cfg.Timeout != 90*time.Second {
			t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
		}
		if cfg.OCR.Scale != 3 || cfg.OCR.Language != "jpn" {
			t.Errorf("OCR = %+v", cfg.OCR)
		}
		// Unset keys keep their defaults.
		if cfg.OCR.Pdftoppm != "pdftoppm" {
			t.Errorf("OCR.Pdftoppm = %q, want default", cfg.OCR.Pdftoppm)
		}
		if cm.ConfigFile() != path {
			t.Errorf("ConfigFile() = %q, want %q", cm.ConfigFile(), path)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "workers: 4\n")
		t.Setenv("PDFOUTLINE_WORKERS", "8")
		t.Setenv("PDFOUTLINE_OCR_LANGUAGE", "hin+mar")

		cm, err := NewManager(path)
		if err != nil {
			t.Fatalf("NewManager failed: %v", err)
		}
		if cm.Get().Workers != 8 {
			t.Errorf("Workers = %d, want 8", cm.Get().Workers)
		}
		if cm.Get().OCR.Language != "hin+mar" {
			t.Errorf("OCR.Language = %q", cm.Get().OCR.Language)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := writeConfig(t, "workers: 0\n")
		if _, err := NewManager(path); err == nil {
			t.Error("expected error for zero workers")
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "workers: [\n")
		if _, err := NewManager(path); err == nil {
			t.Error("expected error for malformed file")
		}
	})
}

func TestManagerSet(t *testing.T) {
	cm, err := NewManager(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if err := cm.Set("input_dir", "/override"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if cm.Get().InputDir != "/override" {
		t.Errorf("InputDir = %q", cm.Get().InputDir)
	}
	if err := cm.Set("ocr.scale", -1.0); err == nil {
		t.Error("expected error for negative scale")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"empty input", func(c *Config) { c.InputDir = "" }, "input_dir"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"zero scale", func(c *Config) { c.OCR.Scale = 0 }, "ocr.scale"},
		{"unknown language", func(c *Config) { c.OCR.Language = "klingon" }, "ocr.language"},
		{"bad psm", func(c *Config) { c.OCR.PSM = "diagonal" }, "ocr.psm"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestLanguage(t *testing.T) {
	cfg := DefaultConfig()
	lang, err := cfg.Language()
	if err != nil || !lang.IsZero() {
		t.Errorf("empty language = %v, %v; want zero", lang, err)
	}

	cfg.OCR.Language = "JPN"
	lang, err = cfg.Language()
	if err != nil {
		t.Fatal(err)
	}
	if lang.Code != "jpn" {
		t.Errorf("Code = %q, want jpn", lang.Code)
	}
}

func TestPageSegMode(t *testing.T) {
	tests := []struct {
		psm  string
		want ocr.PageSegMode
	}{
		{"", ocr.PageSegAuto},
		{"auto", ocr.PageSegAuto},
		{"sparse", ocr.PageSegSparseText},
		{"6", ocr.PageSegSingleBlock},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.OCR.PSM = tt.psm
		got, err := cfg.PageSegMode()
		if err != nil {
			t.Fatalf("PageSegMode(%q) failed: %v", tt.psm, err)
		}
		if got != tt.want {
			t.Errorf("PageSegMode(%q) = %v, want %v", tt.psm, got, tt.want)
		}
	}
}

func TestPageSegModeFromEnv(t *testing.T) {
	t.Setenv("PDFOUTLINE_OCR_PSM", "sparse")
	cm, err := NewManager(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	mode, err := cm.Get().PageSegMode()
	if err != nil {
		t.Fatal(err)
	}
	if mode != ocr.PageSegSparseText {
		t.Errorf("mode = %v, want sparse", mode)
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	level, err := cfg.LogLevel()
	if err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelWarn {
		t.Errorf("level = %v, want WARN", level)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("written defaults do not load: %v", err)
	}
	got, want := cm.Get(), DefaultConfig()
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
