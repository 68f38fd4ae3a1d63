package pdfoutline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/ocr"
	"github.com/tsawler/pdfoutline/raster"
	"github.com/tsawler/pdfoutline/reader"
	"github.com/tsawler/pdfoutline/text"
)

// ErrOpen is returned, wrapped, when a document cannot be opened or decoded.
var ErrOpen = errors.New("cannot open document")

// Document is a decoded text layer. *reader.Reader implements it.
type Document interface {
	PageCount() int
	Page(index int) (*model.Page, error)
}

// Renderer produces a page image for OCR. *raster.Renderer implements it.
type Renderer interface {
	RenderPage(ctx context.Context, index int, scale float64) (*raster.Image, error)
}

// OCREngine recognizes text in an encoded image. *ocr.Client implements it.
type OCREngine interface {
	Recognize(ctx context.Context, imageData []byte, lang text.Language) (string, error)
}

// pageSegmenter is implemented by engines whose page segmentation can be
// configured. *ocr.Client implements it.
type pageSegmenter interface {
	SetPageSegMode(mode ocr.PageSegMode) error
}

// sampler is implemented by documents that can produce language samples
// cheaper than decoding full pages.
type sampler interface {
	SampleText(n int) string
}

// Extractor provides a fluent interface for extracting a title and outline.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	doc      Document

	// Collaborators supplied by the caller; nil means use the defaults
	renderer Renderer
	engine   OCREngine

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		renderer: e.renderer,
		engine:   e.engine,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// OCR sets the OCR engine. The caller keeps ownership of the engine.
// By default a Tesseract client is created for each extraction.
func (e *Extractor) OCR(engine OCREngine) *Extractor {
	newExt := e.clone()
	newExt.engine = engine
	return newExt
}

// NoOCR disables every OCR fallback. Titles that would need OCR come back
// empty with a warning.
func (e *Extractor) NoOCR() *Extractor {
	newExt := e.clone()
	newExt.options.disableOCR = true
	return newExt
}

// PageSegMode sets the Tesseract page segmentation mode used for OCR.
// Engines that do not support segmentation modes ignore it.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	if !mode.Valid() {
		newExt.err = fmt.Errorf("invalid page segmentation mode: %d", mode)
		return newExt
	}
	newExt.options.pageSeg = mode
	newExt.options.pageSegSet = true
	return newExt
}

// Renderer sets the page renderer used to produce OCR images.
// By default pages are rendered with pdftoppm from the opened file.
func (e *Extractor) Renderer(r Renderer) *Extractor {
	newExt := e.clone()
	newExt.renderer = r
	return newExt
}

// Language forces the OCR language instead of detecting it from the
// document's script.
func (e *Extractor) Language(lang text.Language) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// Scale sets the rasterization scale for OCR. Scale 1 is 72 DPI.
func (e *Extractor) Scale(scale float64) *Extractor {
	newExt := e.clone()
	if scale <= 0 {
		newExt.err = fmt.Errorf("invalid scale: %v", scale)
		return newExt
	}
	newExt.options.scale = scale
	return newExt
}

// Pdftoppm sets the pdftoppm binary used by the default renderer.
func (e *Extractor) Pdftoppm(path string) *Extractor {
	newExt := e.clone()
	newExt.options.pdftoppm = path
	return newExt
}

// Extract reads the document and returns its title and outline.
//
// Absence of a title or of headings is not an error: the result then holds
// an empty title or an empty outline. Warnings report OCR fallbacks that
// could not run. Every resource acquired here is released before returning.
func (e *Extractor) Extract(ctx context.Context) (*model.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	doc := e.doc
	if doc == nil {
		if e.filename == "" {
			return nil, nil, fmt.Errorf("%w: no filename specified", ErrOpen)
		}
		r, err := reader.Open(e.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
		defer r.Close()
		doc = r
	}

	x := &extraction{
		ctx:      ctx,
		doc:      doc,
		renderer: e.renderer,
		engine:   e.engine,
		options:  e.options,
		texts:    make(map[string]string),
	}
	if x.renderer == nil && e.filename != "" {
		x.renderer = raster.New(e.filename, raster.Options{Pdftoppm: e.options.pdftoppm})
	}
	defer x.close()

	result, err := x.run()
	if err != nil {
		return nil, x.warnings, err
	}
	return result, x.warnings, nil
}

// extraction holds the state of a single Extract call.
type extraction struct {
	ctx      context.Context
	doc      Document
	renderer Renderer
	engine   OCREngine
	options  ExtractOptions

	// Client created by this extraction, closed on exit
	owned      *ocr.Client
	configured bool

	// Page 1 image and OCR text per language code, so the last-resort
	// pass reuses the earlier recognition.
	image       *raster.Image
	texts       map[string]string
	unavailable bool

	warnings []Warning
}

func (x *extraction) close() {
	if x.owned != nil {
		x.owned.Close()
		x.owned = nil
	}
}

func (x *extraction) warn(code WarningCode, page int, format string, args ...any) {
	x.warnings = append(x.warnings, Warning{
		Code:    code,
		Page:    page,
		Message: fmt.Sprintf(format, args...),
	})
}

func (x *extraction) run() (*model.Result, error) {
	n := x.doc.PageCount()
	result := model.NewResult()

	lang := x.options.language
	forced := !lang.IsZero()
	if !forced {
		lang = text.DetectLanguage(x.sampleText(min(x.options.samplePages, n)))
	}

	pages := make([]*model.Page, n)
	hist := layout.NewHistogram()
	for i := 0; i < n; i++ {
		if err := x.ctx.Err(); err != nil {
			return nil, err
		}
		p, err := x.doc.Page(i)
		if err != nil {
			x.warn(WarnPageUnreadable, i, "%v", err)
			continue
		}
		pages[i] = p
		hist.AddPage(p)
	}
	levels := hist.Levels()

	if levels.IsEmpty() && n > 0 {
		x.warn(WarnNoTextLayer, -1, "no text layer, using OCR")
		ocrText, err := x.recognize(lang)
		if err != nil {
			return nil, err
		}
		if !forced && ocrText != "" {
			lang = text.DetectLanguage(ocrText)
		}
	}

	var title strings.Builder
	for i, p := range pages {
		if p != nil {
			if i == 0 && !levels.IsEmpty() {
				for _, line := range layout.TitleLines(p) {
					title.WriteString(line)
					title.WriteString(" ")
				}
				if title.Len() > 0 {
					result.TitleSource = model.TitleText
				}
			}
			result.Outline = append(result.Outline, layout.PageOutline(p, levels)...)
		}

		if i == 0 && title.Len() == 0 {
			ocrText, err := x.recognize(lang)
			if err != nil {
				return nil, err
			}
			if line := ocr.FirstNonBlankLine(ocrText); line != "" {
				title.WriteString(line)
				result.TitleSource = model.TitleOCR
			}
		}
	}

	if title.Len() == 0 && n > 0 {
		ocrText, err := x.recognize(lang)
		if err != nil {
			return nil, err
		}
		if line := ocr.FirstLine(ocrText); line != "" {
			title.WriteString(line)
			result.TitleSource = model.TitleOCRFallback
		}
	}

	result.Title = strings.TrimSpace(title.String())
	return result, nil
}

// sampleText returns the plain text of the first n pages.
func (x *extraction) sampleText(n int) string {
	if s, ok := x.doc.(sampler); ok {
		return s.SampleText(n)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		p, err := x.doc.Page(i)
		if err != nil {
			continue
		}
		sb.WriteString(p.ExtractText())
	}
	return sb.String()
}

// recognize returns the OCR text of the first page in lang. When OCR cannot
// run at all it records a warning once and returns "".
func (x *extraction) recognize(lang text.Language) (string, error) {
	if x.unavailable {
		return "", nil
	}
	if s, ok := x.texts[lang.Code]; ok {
		return s, nil
	}

	if x.options.disableOCR {
		return x.markUnavailable(WarnOCRUnavailable, "OCR disabled")
	}

	engine, err := x.ocrEngine()
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		return x.markUnavailable(WarnOCRUnavailable, "%v", err)
	}
	if err != nil {
		return "", fmt.Errorf("starting OCR: %w", err)
	}

	img, err := x.pageImage()
	if errors.Is(err, raster.ErrNoImage) {
		return x.markUnavailable(WarnNoPageImage, "%v", err)
	}
	if err != nil {
		return "", fmt.Errorf("rendering page 1: %w", err)
	}

	s, err := engine.Recognize(x.ctx, img.PNG, lang)
	if errors.Is(err, ocr.ErrOCRNotEnabled) {
		return x.markUnavailable(WarnOCRUnavailable, "%v", err)
	}
	if err != nil {
		return "", fmt.Errorf("OCR page 1 (%s): %w", lang, err)
	}
	x.texts[lang.Code] = s
	return s, nil
}

func (x *extraction) markUnavailable(code WarningCode, format string, args ...any) (string, error) {
	x.unavailable = true
	x.warn(code, 0, format, args...)
	return "", nil
}

func (x *extraction) ocrEngine() (OCREngine, error) {
	if x.engine != nil {
		return x.engine, x.configure(x.engine)
	}
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	x.owned = client
	x.engine = client
	return client, x.configure(client)
}

// configure applies the page segmentation option once per extraction.
func (x *extraction) configure(engine OCREngine) error {
	if !x.options.pageSegSet || x.configured {
		return nil
	}
	x.configured = true
	if ps, ok := engine.(pageSegmenter); ok {
		if err := ps.SetPageSegMode(x.options.pageSeg); err != nil {
			return fmt.Errorf("setting page segmentation mode: %w", err)
		}
	}
	return nil
}

func (x *extraction) pageImage() (*raster.Image, error) {
	if x.image != nil {
		return x.image, nil
	}
	if x.renderer == nil {
		return nil, raster.ErrNoImage
	}
	img, err := x.renderer.RenderPage(x.ctx, 0, x.options.scale)
	if err != nil {
		return nil, err
	}
	if img.Method == raster.MethodEmbedded {
		x.warn(WarnEmbeddedImage, 0, "using the largest embedded image instead of a rendered page")
	}
	x.image = img
	return img, nil
}
