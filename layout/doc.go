// Package layout infers document structure from font sizes.
//
// A [Histogram] counts span sizes across a document. Its most common size is
// the body size; the three largest distinct sizes above it are the heading
// tiers H1 to H3:
//
//	hist := layout.NewHistogram()
//	for _, page := range pages {
//	    hist.AddPage(page)
//	}
//	levels := hist.Levels()
//
// [PageOutline] turns the lines of one page into outline entries using those
// tiers, numbering them with the page number printed on the page when
// [VisiblePageNumber] finds one. [TitleLines] selects the candidate title
// lines of a first page.
//
// Sizes are compared exactly, as reported by the PDF. Ties in frequency go
// to the size seen first, so results do not depend on map order.
package layout
