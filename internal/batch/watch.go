package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/tsawler/pdfoutline/format"
)

// DefaultDebounce is how long Watch waits after the last event for a file
// before processing it. Copying a large PDF emits many write events.
const DefaultDebounce = 500 * time.Millisecond

// Watch runs once, then keeps processing PDFs as they are added or changed
// in the input directory and removes the results of deleted PDFs. It
// returns when ctx is done. An empty input directory is not an error here.
func (r *Runner) Watch(ctx context.Context) error {
	return r.watch(ctx, DefaultDebounce)
}

func (r *Runner) watch(ctx context.Context, debounce time.Duration) error {
	if _, err := r.Run(ctx); err != nil && !errors.Is(err, ErrNoPDFs) {
		return err
	}

	cfg := r.config()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.InputDir); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.InputDir, err)
	}
	r.logger.Info("watching for changes", "dir", cfg.InputDir)

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if format.Detect(name) != format.PDF {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[name] = true
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			r.flush(ctx, pending)
			pending = make(map[string]bool)
		}
	}
}

// flush processes the PDFs that changed since the last flush. A name whose
// file no longer exists has its result removed.
func (r *Runner) flush(ctx context.Context, pending map[string]bool) {
	cfg := r.config()
	logger := r.logger.With("run", uuid.NewString())

	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if ctx.Err() != nil {
			return
		}
		info, err := os.Stat(filepath.Join(cfg.InputDir, name))
		if err == nil && !info.IsDir() {
			_ = r.processFile(ctx, logger, cfg, name)
			continue
		}

		out := filepath.Join(cfg.OutputDir, OutputName(name))
		if err := os.Remove(out); err == nil {
			logger.Info("removed result of deleted input", "file", out)
		} else if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("failed to remove result", "file", out, "error", err)
		}
	}
}
