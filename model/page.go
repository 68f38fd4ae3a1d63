package model

import "strings"

// Page represents a single page in a document
type Page struct {
	Index  int     // 0-based physical page index
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []Block // Blocks in layout traversal order
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page
func (p *Page) AddBlock(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// Lines returns every line of every text block, in block-then-line order.
// Non-text blocks are skipped.
func (p *Page) Lines() []Line {
	var lines []Line
	for _, b := range p.Blocks {
		if b.Type != BlockText {
			continue
		}
		lines = append(lines, b.Lines...)
	}
	return lines
}

// Sizes returns the font size of every span on the page in traversal order.
func (p *Page) Sizes() []float64 {
	var sizes []float64
	for _, line := range p.Lines() {
		for _, s := range line.Spans {
			sizes = append(sizes, s.Size)
		}
	}
	return sizes
}

// MaxSize returns the largest span size anywhere on the page, or 0 when the
// page has no spans.
func (p *Page) MaxSize() float64 {
	var max float64
	for _, size := range p.Sizes() {
		if size > max {
			max = size
		}
	}
	return max
}

// ExtractText returns the page text, one line per row.
func (p *Page) ExtractText() string {
	var sb strings.Builder
	for _, line := range p.Lines() {
		sb.WriteString(line.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}
