package reader

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// glyphs splits s into one glyph per rune, advancing x by a fixed width.
func glyphs(s, font string, size, x, y float64) []pdf.Text {
	var out []pdf.Text
	w := size * 0.5
	for _, r := range s {
		out = append(out, pdf.Text{Font: font, FontSize: size, X: x, Y: y, W: w, S: string(r)})
		x += w
	}
	return out
}

func concat(parts ...[]pdf.Text) []pdf.Text {
	var out []pdf.Text
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestGroupGlyphsLinesAndSpans(t *testing.T) {
	in := concat(
		glyphs("Chapter ", "Helvetica-Bold", 18, 72, 700),
		glyphs("One", "Helvetica", 18, 144, 700),
		glyphs("Body text", "Helvetica", 12, 72, 680),
	)

	blocks := groupGlyphs(in, DefaultGroupConfig())
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	lines := blocks[0].Lines
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	if got := lines[0].Text(); got != "Chapter One" {
		t.Errorf("line 0 = %q, want %q", got, "Chapter One")
	}
	if len(lines[0].Spans) != 2 {
		t.Errorf("line 0 has %d spans, want 2 (font change)", len(lines[0].Spans))
	}
	if lines[0].MaxSize() != 18 {
		t.Errorf("line 0 max size = %v, want 18", lines[0].MaxSize())
	}
	if got := lines[1].Text(); got != "Body text" {
		t.Errorf("line 1 = %q, want %q", got, "Body text")
	}
}

func TestGroupGlyphsInsertsSpaces(t *testing.T) {
	in := concat(
		glyphs("Hello", "F", 10, 72, 500),
		glyphs("World", "F", 10, 120, 500),
	)
	blocks := groupGlyphs(in, DefaultGroupConfig())
	if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("unexpected structure: %+v", blocks)
	}
	if got := blocks[0].Lines[0].Text(); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
	if len(blocks[0].Lines[0].Spans) != 1 {
		t.Errorf("same font and size should stay one span")
	}
}

func TestGroupGlyphsBlocks(t *testing.T) {
	in := concat(
		glyphs("Title", "F", 24, 72, 720),
		glyphs("Para one", "F", 12, 72, 650),
		glyphs("continues", "F", 12, 72, 636),
		glyphs("7", "F", 10, 300, 40),
	)
	blocks := groupGlyphs(in, DefaultGroupConfig())
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	if len(blocks[1].Lines) != 2 {
		t.Errorf("paragraph block has %d lines, want 2", len(blocks[1].Lines))
	}
	if got := blocks[2].Lines[0].Text(); got != "7" {
		t.Errorf("footer line = %q, want %q", got, "7")
	}
}

func TestGroupGlyphsSkipsEmpty(t *testing.T) {
	if blocks := groupGlyphs(nil, DefaultGroupConfig()); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
	in := []pdf.Text{{S: "", FontSize: 12, X: 1, Y: 1}}
	if blocks := groupGlyphs(in, DefaultGroupConfig()); len(blocks) != 0 {
		t.Errorf("expected no blocks for empty glyphs, got %d", len(blocks))
	}
}

func TestGroupGlyphsSubscriptStaysOnLine(t *testing.T) {
	in := concat(
		glyphs("H", "F", 12, 72, 500),
		glyphs("2", "F", 8, 78, 497),
		glyphs("O", "F", 12, 82, 500),
	)
	blocks := groupGlyphs(in, DefaultGroupConfig())
	if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("subscript split the line: %+v", blocks)
	}
	line := blocks[0].Lines[0]
	if len(line.Spans) != 3 {
		t.Errorf("got %d spans, want 3", len(line.Spans))
	}
	if line.MaxSize() != 12 {
		t.Errorf("max size = %v, want 12", line.MaxSize())
	}
}
