package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pdfoutline/internal/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := newLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "file", "a.pdf")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"file":"a.pdf"`) {
		t.Errorf("expected JSON record, got %s", out)
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be enabled")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	rootCmd.SetArgs([]string{"config", "init", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "input_dir: input") {
		t.Errorf("unexpected config:\n%s", data)
	}

	rootCmd.SetArgs([]string{"config", "init", path})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error when the file exists")
	}
}

func TestRunMissingInputFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := config.WriteDefault(cfgPath); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{
		"run",
		"--config", cfgPath,
		"--input", filepath.Join(dir, "missing"),
		"--output", filepath.Join(dir, "out"),
	})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for a missing input directory")
	}
}
