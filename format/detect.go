// Package format provides file format detection for batch extraction.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a file format handled by the batch tool.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// JSON indicates an extraction result.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines file format from filename extension, ignoring case.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// pdfMagic is the marker that opens every PDF file header.
var pdfMagic = []byte("%PDF-")

// DetectFromMagic checks file magic bytes to determine format. PDF readers
// tolerate leading garbage before the header, so the marker may appear
// anywhere in data; callers pass the first kilobyte of the file.
func DetectFromMagic(data []byte) Format {
	if bytes.Contains(data, pdfMagic) {
		return PDF
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\xef\xbb\xbf")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}
	return Unknown
}

// ResultName returns the name of the result file written for a document:
// the base name with its extension replaced by f's extension.
func ResultName(filename string, f Format) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base)) + f.Extension()
}
