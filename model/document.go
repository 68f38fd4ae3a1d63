package model

// Document is an ordered sequence of pages loaded from a single file.
type Document struct {
	Path  string
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page, assigning its 0-based physical index.
func (d *Document) AddPage(page *Page) {
	page.Index = len(d.Pages)
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Page returns the page at the given 0-based index, or nil when out of range.
// The error is always nil; it exists so Document satisfies the same contract
// as readers that decode pages lazily.
func (d *Document) Page(index int) (*Page, error) {
	if index < 0 || index >= len(d.Pages) {
		return nil, nil
	}
	return d.Pages[index], nil
}
