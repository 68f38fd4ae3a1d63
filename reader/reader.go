package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/format"
	"github.com/tsawler/pdfoutline/model"
)

// ErrNotPDF is returned when a file does not carry the PDF magic bytes.
var ErrNotPDF = errors.New("not a PDF file")

// magicWindow is how far into the file the %PDF marker is searched for.
const magicWindow = 1024

// Reader represents a PDF file reader
type Reader struct {
	path   string
	file   *os.File
	pdf    *pdf.Reader
	config GroupConfig

	pages map[int]*model.Page // Decoded pages by 0-based index
}

// NewReader creates a new PDF reader for the given file. The caller keeps
// ownership of file.
func NewReader(file *os.File) (*Reader, error) {
	return NewReaderWithConfig(file, DefaultGroupConfig())
}

// NewReaderWithConfig creates a reader with custom glyph grouping.
func NewReaderWithConfig(file *os.File, config GroupConfig) (r *Reader, err error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	head := make([]byte, magicWindow)
	n, err := file.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if format.DetectFromMagic(head[:n]) != format.PDF {
		return nil, ErrNotPDF
	}

	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("failed to parse PDF: %v", rec)
		}
	}()
	pr, err := pdf.NewReader(file, fileInfo.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	return &Reader{
		path:   file.Name(),
		file:   file,
		pdf:    pr,
		config: config,
		pages:  make(map[int]*model.Page),
	}, nil
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return reader, nil
}

// Close closes the PDF file
func (r *Reader) Close() error {
	r.pages = nil
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Path returns the file the reader was opened from.
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages in the PDF
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page returns the page at the given index (0-based). Decoded pages are
// cached for the lifetime of the reader.
func (r *Reader) Page(index int) (*model.Page, error) {
	if index < 0 || index >= r.PageCount() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, r.PageCount())
	}
	if p, ok := r.pages[index]; ok {
		return p, nil
	}

	p, err := r.decodePage(index)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", index+1, err)
	}
	r.pages[index] = p
	return p, nil
}

// Document decodes every page into a model.Document.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Path = r.path
	for i := 0; i < r.PageCount(); i++ {
		p, err := r.Page(i)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, p)
	}
	return doc, nil
}

// SampleText returns the plain text of the first n pages. Pages that fail to
// decode contribute nothing.
func (r *Reader) SampleText(n int) string {
	if n > r.PageCount() {
		n = r.PageCount()
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		p, err := r.Page(i)
		if err != nil {
			continue
		}
		sb.WriteString(p.ExtractText())
	}
	return sb.String()
}

// decodePage runs the content stream of one page through the PDF library and
// groups the result.
func (r *Reader) decodePage(index int) (page *model.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			page, err = nil, fmt.Errorf("failed to decode content: %v", rec)
		}
	}()

	p := r.pdf.Page(index + 1)
	if p.V.IsNull() {
		return nil, fmt.Errorf("missing page object")
	}

	width, height := mediaBox(p.V)
	page = model.NewPage(width, height)
	page.Index = index

	content := p.Content()
	for _, b := range groupGlyphs(content.Text, r.config) {
		page.AddBlock(b)
	}
	for i := 0; i < countImages(p); i++ {
		page.AddBlock(model.Block{Type: model.BlockImage})
	}
	return page, nil
}

// mediaBox returns the page dimensions, honoring inheritance from the page
// tree. A missing box yields US Letter.
func mediaBox(v pdf.Value) (float64, float64) {
	box := inherited(v, "MediaBox")
	if box.Len() != 4 {
		return 612, 792
	}
	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	return width, height
}

// inherited looks a key up on a page and then on its ancestors.
func inherited(v pdf.Value, key string) pdf.Value {
	for depth := 0; !v.IsNull() && depth < 64; depth++ {
		if found := v.Key(key); !found.IsNull() {
			return found
		}
		v = v.Key("Parent")
	}
	return pdf.Value{}
}

// countImages counts image XObjects referenced from the page resources.
func countImages(p pdf.Page) int {
	xobjects := p.Resources().Key("XObject")
	count := 0
	for _, name := range xobjects.Keys() {
		if xobjects.Key(name).Key("Subtype").Name() == "Image" {
			count++
		}
	}
	return count
}
