package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tsawler/pdfoutline/ocr"
	"github.com/tsawler/pdfoutline/text"
)

// Config is the top-level configuration.
type Config struct {
	InputDir  string        `mapstructure:"input_dir" yaml:"input_dir"`
	OutputDir string        `mapstructure:"output_dir" yaml:"output_dir"`
	Workers   int           `mapstructure:"workers" yaml:"workers"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"` // per document, 0 = none
	OCR       OCRCfg        `mapstructure:"ocr" yaml:"ocr"`
	Log       LogCfg        `mapstructure:"log" yaml:"log"`
}

// OCRCfg configures page rendering and recognition.
type OCRCfg struct {
	Scale    float64 `mapstructure:"scale" yaml:"scale"`
	Language string  `mapstructure:"language" yaml:"language"` // "" = detect per document
	Pdftoppm string  `mapstructure:"pdftoppm" yaml:"pdftoppm"`
	PSM      string  `mapstructure:"psm" yaml:"psm"` // auto, column, block, sparse or 0-13
	Disabled bool    `mapstructure:"disabled" yaml:"disabled"`
}

// LogCfg configures the slog handler.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "input",
		OutputDir: "output",
		Workers:   1,
		OCR: OCRCfg{
			Scale:    2.0,
			Pdftoppm: "pdftoppm",
			PSM:      "auto",
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.OCR.Scale <= 0 {
		return fmt.Errorf("ocr.scale must be positive, got %v", c.OCR.Scale)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.PageSegMode(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Language returns the forced OCR language, or the zero Language when the
// language should be detected per document.
func (c *Config) Language() (text.Language, error) {
	if c.OCR.Language == "" {
		return text.Language{}, nil
	}
	lang, err := text.ParseLanguage(c.OCR.Language)
	if err != nil {
		return text.Language{}, fmt.Errorf("ocr.language: %w", err)
	}
	return lang, nil
}

// PageSegMode parses the Tesseract page segmentation mode. An empty value
// means auto.
func (c *Config) PageSegMode() (ocr.PageSegMode, error) {
	if c.OCR.PSM == "" {
		return ocr.PageSegAuto, nil
	}
	mode, err := ocr.ParsePageSegMode(c.OCR.PSM)
	if err != nil {
		return 0, fmt.Errorf("ocr.psm: %w", err)
	}
	return mode, nil
}

// LogLevel parses the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
