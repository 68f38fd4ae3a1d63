//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) capabilities
// for reading text from rendered pages of scanned PDFs.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract and the traineddata for every language in use to be installed on
// the system. On macOS, install via:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-hin tesseract-ocr-mar tesseract-ocr-jpn
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/pdfoutline/text"
)

// Client wraps Tesseract for OCR operations. A Client is not safe for
// concurrent use; create one per goroutine.
type Client struct {
	client *gosseract.Client
	psm    PageSegMode
	hasPSM bool
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// Recognize performs OCR on an encoded image (PNG, TIFF, JPEG, etc.) using
// the recognition model for lang. The text is returned as produced by the
// engine, line breaks and surrounding blank lines included.
//
// Tesseract cannot be interrupted once started; ctx is checked before the
// image is submitted and again when recognition returns.
func (c *Client) Recognize(ctx context.Context, imageData []byte, lang text.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !lang.IsZero() {
		if err := c.SetLanguage(lang.Code); err != nil {
			return "", fmt.Errorf("failed to set language %s: %w", lang, err)
		}
	}
	if c.hasPSM {
		if err := c.client.SetPageSegMode(gosseract.PageSegMode(c.psm)); err != nil {
			return "", fmt.Errorf("failed to set page segmentation mode %s: %w", c.psm, err)
		}
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	out, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return out, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "hin+mar").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode selects how Tesseract segments the page in later
// Recognize calls. Without it Tesseract's default (auto) applies.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid page segmentation mode %d", mode)
	}
	c.psm, c.hasPSM = mode, true
	return nil
}
