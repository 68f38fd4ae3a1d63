package pdfoutline

import (
	"fmt"
	"strings"
)

// WarningCode identifies a kind of non-fatal extraction issue.
type WarningCode int

const (
	// WarnOCRUnavailable means OCR was needed but is not compiled in or disabled.
	WarnOCRUnavailable WarningCode = iota
	// WarnNoPageImage means no page image could be produced for OCR.
	WarnNoPageImage
	// WarnEmbeddedImage means OCR read an embedded image instead of a full render.
	WarnEmbeddedImage
	// WarnNoTextLayer means the document has no extractable text.
	WarnNoTextLayer
	// WarnPageUnreadable means a page's text layer could not be decoded.
	WarnPageUnreadable
)

// String returns a short name for the warning code
func (c WarningCode) String() string {
	switch c {
	case WarnOCRUnavailable:
		return "ocr-unavailable"
	case WarnNoPageImage:
		return "no-page-image"
	case WarnEmbeddedImage:
		return "embedded-image"
	case WarnNoTextLayer:
		return "no-text-layer"
	case WarnPageUnreadable:
		return "page-unreadable"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue: extraction succeeded but the result
// may be less complete than it could be.
type Warning struct {
	Code    WarningCode
	Page    int // 0-based page index, or -1 for the whole document
	Message string
}

// String formats the warning for logs
func (w Warning) String() string {
	if w.Page < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s (page %d): %s", w.Code, w.Page+1, w.Message)
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
