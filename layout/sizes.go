package layout

import (
	"math"
	"sort"

	"github.com/tsawler/pdfoutline/model"
)

// MaxHeadingTiers is the number of heading levels assigned from font sizes.
const MaxHeadingTiers = 3

// Histogram counts span font sizes across a document. Distinct sizes are
// remembered in first-seen order so that ties between equally frequent
// sizes always resolve the same way for the same input.
type Histogram struct {
	order  []float64
	counts map[float64]int
	total  int
}

// NewHistogram creates an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{counts: make(map[float64]int)}
}

// Add records one observation per size. NaN sizes are ignored.
func (h *Histogram) Add(sizes ...float64) {
	for _, s := range sizes {
		if math.IsNaN(s) {
			continue
		}
		if _, ok := h.counts[s]; !ok {
			h.order = append(h.order, s)
		}
		h.counts[s]++
		h.total++
	}
}

// AddPage records every span size on the page.
func (h *Histogram) AddPage(page *model.Page) {
	h.Add(page.Sizes()...)
}

// Len returns the number of observations.
func (h *Histogram) Len() int {
	return h.total
}

// Count returns how many times size was observed.
func (h *Histogram) Count(size float64) int {
	return h.counts[size]
}

// MostCommon returns the most frequent size and its count. Among equally
// frequent sizes the one observed first wins. It returns (0, 0) when the
// histogram is empty.
func (h *Histogram) MostCommon() (float64, int) {
	var best float64
	bestCount := 0
	for _, s := range h.order {
		if c := h.counts[s]; c > bestCount {
			best, bestCount = s, c
		}
	}
	return best, bestCount
}

// Levels derives the size-to-level map from the histogram.
func (h *Histogram) Levels() SizeLevels {
	if h.total == 0 {
		return SizeLevels{}
	}

	body, _ := h.MostCommon()

	var larger []float64
	for _, s := range h.order {
		if s > body {
			larger = append(larger, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(larger)))
	if len(larger) > MaxHeadingTiers {
		larger = larger[:MaxHeadingTiers]
	}

	levels := make(map[float64]model.Level, len(larger))
	for i, s := range larger {
		levels[s] = model.Levels[i]
	}

	return SizeLevels{
		body:     body,
		headings: larger,
		levels:   levels,
		observed: true,
	}
}

// SizeLevels maps font sizes to heading levels. The three largest distinct
// sizes above the body size become H1, H2 and H3 in descending order. Sizes
// are compared exactly; 11.98 and 12.0 are different tiers. The zero value
// is the empty map of a document with no text layer.
type SizeLevels struct {
	body     float64
	headings []float64
	levels   map[float64]model.Level
	observed bool
}

// NewSizeLevels builds the map from a flat list of span sizes.
func NewSizeLevels(sizes []float64) SizeLevels {
	h := NewHistogram()
	h.Add(sizes...)
	return h.Levels()
}

// IsEmpty reports whether no font size was observed at all, meaning the
// document has no extractable text layer.
func (s SizeLevels) IsEmpty() bool {
	return !s.observed
}

// BodySize returns the most common size, or 0 when nothing was observed.
func (s SizeLevels) BodySize() float64 {
	return s.body
}

// HeadingSizes returns the sizes that received a level, largest first.
func (s SizeLevels) HeadingSizes() []float64 {
	out := make([]float64, len(s.headings))
	copy(out, s.headings)
	return out
}

// Level returns the heading level assigned to size, if any.
func (s SizeLevels) Level(size float64) (model.Level, bool) {
	lvl, ok := s.levels[size]
	return lvl, ok
}
