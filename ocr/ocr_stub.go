//go:build !ocr

// Package ocr reads page images with Tesseract.
//
// This build has no Tesseract binding: every call fails with
// ErrOCRNotEnabled, and callers treat the OCR title fallback as unavailable.
// Rebuild with
//
//	go build -tags ocr ./...
//
// after installing Tesseract and its language data for English, Hindi,
// Marathi and Japanese (tesseract-ocr-{eng,hin,mar,jpn} on Debian,
// tesseract-lang on Homebrew).
package ocr

import (
	"context"

	"github.com/tsawler/pdfoutline/text"
)

// Client stands in for the Tesseract client.
type Client struct{}

// New always fails with ErrOCRNotEnabled and a nil client.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close does nothing. Safe on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize fails with ErrOCRNotEnabled.
func (c *Client) Recognize(ctx context.Context, imageData []byte, lang text.Language) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage fails with ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode fails with ErrOCRNotEnabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
