// Package reader provides the text layer of a PDF document.
//
// The package decodes page content with github.com/ledongthuc/pdf and groups
// the positioned glyphs it yields into the block, line and span structure of
// the model package.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// Files that do not start with the PDF magic bytes are rejected with
// [ErrNotPDF] before any parsing happens.
//
// # Page Access
//
// Pages are addressed by 0-based index and decoded on first access:
//
//	page, err := r.Page(0) // First page
//
// Malformed content streams that make the decoder panic are reported as
// errors for that page.
//
// # Grouping
//
// Glyphs are processed in content stream order. A glyph whose baseline lies
// within [GroupConfig].LineTolerance of the current line joins it; otherwise
// it starts a new line. Consecutive glyphs sharing a font and size form a
// span. A vertical jump larger than [GroupConfig].BlockGap line heights
// starts a new block.
package reader
