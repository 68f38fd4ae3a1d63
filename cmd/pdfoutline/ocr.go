package main

import (
	"errors"

	"github.com/tsawler/pdfoutline/ocr"
)

// ocrStatus reports whether the binary can run OCR.
func ocrStatus() string {
	client, err := ocr.New()
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		return "disabled (rebuild with -tags ocr)"
	}
	if err != nil {
		return "unavailable: " + err.Error()
	}
	client.Close()
	return "tesseract"
}
