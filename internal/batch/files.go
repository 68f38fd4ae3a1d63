package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsawler/pdfoutline/format"
	"github.com/tsawler/pdfoutline/model"
)

// ListPDFs returns the names of regular files in dir whose extension is .pdf
// in any case, sorted.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if format.Detect(e.Name()) == format.PDF {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// OutputName returns the result file name for an input PDF name.
func OutputName(pdfName string) string {
	return format.ResultName(pdfName, format.JSON)
}

// CleanStale deletes .json files in outputDir that do not correspond to any
// of pdfNames. Deletion failures are logged and skipped. It returns the
// names removed.
func CleanStale(outputDir string, pdfNames []string, logger *slog.Logger) ([]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, err
	}

	valid := make(map[string]bool, len(pdfNames))
	for _, name := range pdfNames {
		valid[OutputName(name)] = true
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || format.Detect(e.Name()) != format.JSON || valid[e.Name()] {
			continue
		}
		path := filepath.Join(outputDir, e.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove stale result", "file", path, "error", err)
			continue
		}
		logger.Info("removed stale result", "file", path)
		removed = append(removed, e.Name())
	}
	return removed, nil
}

// WriteResult writes result as indented UTF-8 JSON to path. Non-ASCII text
// is written verbatim. The file is replaced atomically, so a failed write
// never leaves a partial result behind.
func WriteResult(path string, result *model.Result) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pdfoutline-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
