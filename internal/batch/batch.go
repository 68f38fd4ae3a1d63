// Package batch runs title and outline extraction over a directory of PDFs
// and writes one JSON result per input file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/internal/config"
	"github.com/tsawler/pdfoutline/model"
)

var (
	// ErrNoInputDir is returned when the input directory does not exist.
	ErrNoInputDir = errors.New("input directory not found")
	// ErrNoPDFs is returned when the input directory holds no PDF files.
	ErrNoPDFs = errors.New("no PDF files found")
)

// ExtractFunc extracts one document.
type ExtractFunc func(ctx context.Context, path string) (*model.Result, []pdfoutline.Warning, error)

// Summary reports the outcome of one run.
type Summary struct {
	RunID     string
	Files     int
	Succeeded int
	Failed    int
	Removed   int
	Duration  time.Duration
}

// Runner processes the input directory described by a Config.
type Runner struct {
	logger *slog.Logger

	mu      sync.RWMutex
	cfg     *config.Config
	extract ExtractFunc
}

// New creates a Runner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Runner{cfg: cfg, logger: logger}
	r.extract = r.extractFile
	return r
}

// SetConfig replaces the configuration used by subsequent documents. The
// input and output directories of a running Watch do not change.
func (r *Runner) SetConfig(cfg *config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

func (r *Runner) config() *config.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Run processes every PDF in the input directory once. Stale results are
// removed first. Failures of individual documents are logged and counted;
// they do not stop the run or produce an error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	cfg := r.config()
	summary := Summary{RunID: uuid.NewString()}
	logger := r.logger.With("run", summary.RunID)
	start := time.Now()

	names, err := r.prepare(cfg)
	if err != nil {
		return summary, err
	}
	summary.Files = len(names)

	removed, err := CleanStale(cfg.OutputDir, names, logger)
	if err != nil {
		return summary, fmt.Errorf("cleaning stale results: %w", err)
	}
	summary.Removed = len(removed)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, name := range names {
		name := name
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			err := r.processFile(gctx, logger, cfg, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
			} else {
				summary.Succeeded++
			}
			return nil
		})
	}

	err = g.Wait()
	summary.Duration = time.Since(start)
	logger.Info("run complete",
		"files", summary.Files,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"removed", summary.Removed,
		"duration", summary.Duration)
	if err != nil {
		return summary, err
	}
	return summary, ctx.Err()
}

// prepare creates the output directory and lists the inputs.
func (r *Runner) prepare(cfg *config.Config) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoInputDir, cfg.InputDir)
	}

	names, err := ListPDFs(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", cfg.InputDir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPDFs, cfg.InputDir)
	}
	return names, nil
}

// processFile extracts one PDF and writes its result.
func (r *Runner) processFile(ctx context.Context, logger *slog.Logger, cfg *config.Config, name string) error {
	inPath := filepath.Join(cfg.InputDir, name)
	outPath := filepath.Join(cfg.OutputDir, OutputName(name))
	logger = logger.With("file", name)

	logger.Info("processing")
	start := time.Now()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result, warnings, err := r.extract(ctx, inPath)
	if err == nil {
		err = WriteResult(outPath, result)
	}
	if err != nil {
		logger.Error("failed", "error", err, "duration", time.Since(start))
		return err
	}

	if len(warnings) > 0 {
		logger.Warn("extraction warnings", "warnings", pdfoutline.FormatWarnings(warnings))
	}
	logger.Info("done",
		"output", outPath,
		"duration", time.Since(start),
		"headings", len(result.Outline),
		"title_source", result.TitleSource)
	return nil
}

// extractFile is the default ExtractFunc, configured from the current Config.
func (r *Runner) extractFile(ctx context.Context, path string) (*model.Result, []pdfoutline.Warning, error) {
	cfg := r.config()
	ext := pdfoutline.Open(path).
		Scale(cfg.OCR.Scale).
		Pdftoppm(cfg.OCR.Pdftoppm)

	lang, err := cfg.Language()
	if err != nil {
		return nil, nil, err
	}
	if !lang.IsZero() {
		ext = ext.Language(lang)
	}
	mode, err := cfg.PageSegMode()
	if err != nil {
		return nil, nil, err
	}
	ext = ext.PageSegMode(mode)
	if cfg.OCR.Disabled {
		ext = ext.NoOCR()
	}
	return ext.Extract(ctx)
}
