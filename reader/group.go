package reader

import (
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/model"
)

// GroupConfig holds configuration for grouping glyphs into lines and blocks
type GroupConfig struct {
	// LineTolerance is the baseline distance, as a fraction of font size,
	// within which a glyph joins the current line (default: 0.5)
	LineTolerance float64

	// SpaceThreshold is the horizontal gap, as a fraction of font size, above
	// which a space is inserted between glyphs (default: 0.2)
	SpaceThreshold float64

	// BlockGap is the baseline distance, as a multiple of line size, above
	// which a new block is started (default: 1.5)
	BlockGap float64
}

// DefaultGroupConfig returns sensible default configuration
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		LineTolerance:  0.5,
		SpaceThreshold: 0.2,
		BlockGap:       1.5,
	}
}

// lineBuilder accumulates glyphs for one line
type lineBuilder struct {
	baseline float64
	size     float64
	lastEnd  float64
	spans    []model.Span
}

func newLineBuilder(g pdf.Text) *lineBuilder {
	return &lineBuilder{baseline: g.Y, lastEnd: g.X}
}

// accepts reports whether g sits on this line's baseline
func (b *lineBuilder) accepts(g pdf.Text, cfg GroupConfig) bool {
	tol := cfg.LineTolerance * math.Max(g.FontSize, b.size)
	return math.Abs(g.Y-b.baseline) <= tol
}

func (b *lineBuilder) add(g pdf.Text, cfg GroupConfig) {
	gap := g.X - b.lastEnd
	spaced := len(b.spans) > 0 && gap > cfg.SpaceThreshold*math.Max(g.FontSize, 1)

	if n := len(b.spans); n > 0 {
		last := &b.spans[n-1]
		if spaced && !strings.HasSuffix(last.Text, " ") && !strings.HasPrefix(g.S, " ") {
			last.Text += " "
		}
		if last.FontName == g.Font && last.Size == g.FontSize {
			last.Text += g.S
			b.advance(g)
			return
		}
	}

	b.spans = append(b.spans, model.Span{
		Text:     g.S,
		Size:     g.FontSize,
		FontName: g.Font,
	})
	b.advance(g)
}

func (b *lineBuilder) advance(g pdf.Text) {
	b.lastEnd = g.X + g.W
	if g.FontSize > b.size {
		b.size = g.FontSize
	}
}

// groupGlyphs turns glyphs in content stream order into text blocks
func groupGlyphs(glyphs []pdf.Text, cfg GroupConfig) []model.Block {
	var (
		blocks       []model.Block
		lines        []model.Line
		cur          *lineBuilder
		prevBaseline float64
		prevSize     float64
	)

	flush := func() {
		if cur == nil {
			return
		}
		if len(lines) > 0 {
			gap := math.Abs(prevBaseline - cur.baseline)
			if gap > cfg.BlockGap*math.Max(prevSize, cur.size) {
				blocks = append(blocks, model.TextBlock(lines...))
				lines = nil
			}
		}
		lines = append(lines, model.NewLine(cur.spans...))
		prevBaseline, prevSize = cur.baseline, cur.size
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if cur != nil && !cur.accepts(g, cfg) {
			flush()
		}
		if cur == nil {
			cur = newLineBuilder(g)
		}
		cur.add(g, cfg)
	}
	flush()

	if len(lines) > 0 {
		blocks = append(blocks, model.TextBlock(lines...))
	}
	return blocks
}
