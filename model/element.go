package model

import "strings"

// BlockType distinguishes text blocks from blocks that carry no text layer.
type BlockType int

const (
	BlockText BlockType = iota
	BlockImage
)

// String returns a human-readable name for the block type
func (bt BlockType) String() string {
	switch bt {
	case BlockText:
		return "text"
	case BlockImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block is a spatially coherent group of lines on a page.
type Block struct {
	Type  BlockType
	Lines []Line
}

// TextBlock creates a text block from the given lines
func TextBlock(lines ...Line) Block {
	return Block{Type: BlockText, Lines: lines}
}

// Line is an ordered sequence of spans sharing a baseline.
type Line struct {
	Spans []Span
}

// NewLine creates a line from the given spans
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// Text returns the concatenated span text with surrounding whitespace removed.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// MaxSize returns the largest span size on the line, or 0 for an empty line.
func (l Line) MaxSize() float64 {
	var max float64
	for _, s := range l.Spans {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// Span is a run of text drawn with a single font at a single size.
type Span struct {
	Text     string
	Size     float64 // Font size in points
	FontName string
}
