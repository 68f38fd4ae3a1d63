// Package pdfoutline extracts a title and a three-level heading outline from
// PDF files, falling back to OCR when a document has no text layer.
//
// Basic usage:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Title)
//	for _, h := range result.Outline {
//	    fmt.Println(h.Level, h.Text, h.Page)
//	}
//
// With options:
//
//	result, _, err := pdfoutline.Open("scan.pdf").
//	    Language(text.Japanese).
//	    Scale(3).
//	    Extract(ctx)
//
// # Heuristics
//
// Structure is inferred from typography alone. The most frequent span font
// size in the document is taken as body text, and the three largest distinct
// sizes above it become H1, H2 and H3. Every line whose largest span has one
// of those sizes is an outline entry. The title is every line on the first
// page set in that page's largest size.
//
// Headings report the page number printed on their page when a line
// consisting of one to four digits is found there, and the 0-based page index
// otherwise.
//
// # OCR Fallback
//
// When the document has no text at all, or the first page yields no title,
// the first page is rendered at [DefaultScale] and read by OCR with a
// language guessed from the document's script. OCR requires building with
// -tags ocr; without it, the title stays empty and a warning is returned.
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/model"
)

// Open returns an Extractor for the PDF file at filename. The file is opened
// lazily by the terminal operation, which also releases it.
//
// Example:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Extract(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already-loaded text layer.
// Without a Renderer option OCR has no page images, so title fallbacks yield
// an empty title with a warning.
// Note: The caller is responsible for closing the document, if it needs it.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	result, _, err := pdfoutline.FromDocument(r).Extract(ctx)
func FromDocument(doc Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to Extract and panics if the error is
// non-nil. It discards warnings and is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	result := pdfoutline.Must(pdfoutline.Open("document.pdf").Extract(ctx))
func Must(result *model.Result, _ []Warning, err error) *model.Result {
	if err != nil {
		panic(err)
	}
	return result
}
