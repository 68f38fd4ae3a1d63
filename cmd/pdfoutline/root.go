package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/internal/config"
)

var (
	cfgFile   string
	inputDir  string
	outputDir string
	workers   int
	language  string
	psm       string
	noOCR     bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfoutline",
	Short: "Extract titles and heading outlines from PDFs",
	Long: `pdfoutline reads every PDF in an input directory and writes one JSON
file per document to an output directory:

  {"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}

Headings are inferred from font sizes. Scanned documents fall back to OCR
for the title when the binary is built with -tags ocr.

Examples:
  pdfoutline                          # input/ -> output/
  pdfoutline -i docs -O results -w 4  # custom directories, 4 workers
  pdfoutline watch                    # keep processing new files`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdfoutline/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "", "input directory (default: input)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "O", "", "output directory (default: output)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "documents processed in parallel (default: 1)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "force the OCR language: eng, hin+mar, jpn")
	rootCmd.PersistentFlags().StringVar(&psm, "psm", "", "Tesseract page segmentation: auto, column, block, sparse or 0-13")
	rootCmd.PersistentFlags().BoolVar(&noOCR, "no-ocr", false, "never fall back to OCR")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig builds the configuration and applies flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.Manager, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag  string
		key   string
		value any
	}{
		{"input", "input_dir", inputDir},
		{"output", "output_dir", outputDir},
		{"workers", "workers", workers},
		{"lang", "ocr.language", language},
		{"psm", "ocr.psm", psm},
		{"no-ocr", "ocr.disabled", noOCR},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		if err := cm.Set(o.key, o.value); err != nil {
			return nil, fmt.Errorf("--%s: %w", o.flag, err)
		}
	}
	return cm, nil
}

// newLogger creates the slog logger described by cfg.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// fail reports err on stderr and returns it so cobra exits non-zero.
func fail(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
