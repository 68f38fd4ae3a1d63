package pdfoutline

import (
	"github.com/tsawler/pdfoutline/ocr"
	"github.com/tsawler/pdfoutline/text"
)

// DefaultScale is the rasterization scale used for OCR: twice the page's
// point size, 144 DPI.
const DefaultScale = 2.0

// DefaultSamplePages is how many leading pages feed language detection.
const DefaultSamplePages = 2

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Language forced for OCR; zero means detect from the document
	language text.Language

	// Rasterization scale for OCR page images
	scale float64

	// Leading pages sampled for language detection
	samplePages int

	// pdftoppm binary used by the default renderer
	pdftoppm string

	// disableOCR skips every OCR fallback
	disableOCR bool

	// Tesseract page segmentation mode; applied only when pageSegSet
	pageSeg    ocr.PageSegMode
	pageSegSet bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		scale:       DefaultScale,
		samplePages: DefaultSamplePages,
	}
}

// clone creates a copy of ExtractOptions. All fields are values.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
