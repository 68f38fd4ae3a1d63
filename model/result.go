package model

// Level is a heading level label.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Levels lists the heading labels from the largest size tier down.
var Levels = []Level{H1, H2, H3}

// OutlineEntry is one heading in the document outline.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// TitleSource records which strategy produced a title.
type TitleSource string

const (
	// TitleNone means every strategy came up empty.
	TitleNone TitleSource = "none"
	// TitleText means the title came from the largest lines on the first page.
	TitleText TitleSource = "text"
	// TitleOCR means the first non-blank OCR line of the first page was used.
	TitleOCR TitleSource = "ocr"
	// TitleOCRFallback means the first OCR line was taken after all else failed.
	TitleOCRFallback TitleSource = "ocr-fallback"
)

// Result is the title and outline extracted from a document.
type Result struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`

	// TitleSource is diagnostic and not part of the JSON artefact.
	TitleSource TitleSource `json:"-"`
}

// NewResult creates an empty result whose outline marshals as [] rather than null.
func NewResult() *Result {
	return &Result{Outline: make([]OutlineEntry, 0), TitleSource: TitleNone}
}
