package model

import (
	"encoding/json"
	"testing"
)

func TestLineText(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		want  string
	}{
		{"empty", nil, ""},
		{"single", []Span{{Text: "Intro", Size: 12}}, "Intro"},
		{"joined", []Span{{Text: "  Chapter ", Size: 14}, {Text: "One  ", Size: 14}}, "Chapter One"},
		{"whitespace only", []Span{{Text: " \t", Size: 9}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewLine(tt.spans...).Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineMaxSize(t *testing.T) {
	line := NewLine(Span{Text: "a", Size: 10}, Span{Text: "b", Size: 14.5}, Span{Text: "c", Size: 12})
	if got := line.MaxSize(); got != 14.5 {
		t.Errorf("MaxSize() = %v, want 14.5", got)
	}
	if got := (Line{}).MaxSize(); got != 0 {
		t.Errorf("empty MaxSize() = %v, want 0", got)
	}
}

func TestPageSkipsNonTextBlocks(t *testing.T) {
	page := NewPage(612, 792)
	page.AddBlock(TextBlock(NewLine(Span{Text: "Title", Size: 24})))
	page.AddBlock(Block{Type: BlockImage})
	page.AddBlock(TextBlock(NewLine(Span{Text: "Body", Size: 12}), NewLine(Span{Text: "More", Size: 12})))

	lines := page.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() returned %d lines, want 3", len(lines))
	}
	if lines[0].Text() != "Title" || lines[2].Text() != "More" {
		t.Errorf("unexpected line order: %q, %q", lines[0].Text(), lines[2].Text())
	}

	sizes := page.Sizes()
	want := []float64{24, 12, 12}
	if len(sizes) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Sizes()[%d] = %v, want %v", i, sizes[i], want[i])
		}
	}
	if page.MaxSize() != 24 {
		t.Errorf("MaxSize() = %v, want 24", page.MaxSize())
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(100, 100))
	doc.AddPage(NewPage(100, 100))

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	p, err := doc.Page(1)
	if err != nil || p == nil {
		t.Fatalf("Page(1) = %v, %v", p, err)
	}
	if p.Index != 1 {
		t.Errorf("Index = %d, want 1", p.Index)
	}
	if p, _ := doc.Page(5); p != nil {
		t.Error("expected nil page for out-of-range index")
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(NewResult())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"title":"","outline":[]}` {
		t.Errorf("got %s", data)
	}

	r := NewResult()
	r.Title = "Report"
	r.Outline = append(r.Outline, OutlineEntry{Level: H2, Text: "Scope", Page: 3})
	data, _ = json.Marshal(r)
	want := `{"title":"Report","outline":[{"level":"H2","text":"Scope","page":3}]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestTextBlock(t *testing.T) {
	b := TextBlock(
		NewLine(Span{Text: "Title", Size: 24, FontName: "Helvetica-Bold"}),
		NewLine(Span{Text: "Body", Size: 12, FontName: "Helvetica"}),
	)
	if b.Type != BlockText {
		t.Errorf("Type = %v, want text", b.Type)
	}
	if len(b.Lines) != 2 || b.Lines[0].Text() != "Title" || b.Lines[1].Text() != "Body" {
		t.Errorf("Lines = %+v, want Title then Body", b.Lines)
	}
	if got := b.Lines[0].Spans[0]; got != (Span{Text: "Title", Size: 24, FontName: "Helvetica-Bold"}) {
		t.Errorf("Span = %+v", got)
	}
}
