// Package model provides the intermediate representation for documents whose
// structure is being extracted, and the result produced from them.
//
// # Document Structure
//
// A [Document] is an ordered list of [Page] values. Each page holds
// [Block] values in layout traversal order; text blocks carry [Line] values,
// which in turn carry [Span] values. A span is the smallest styled run of
// text and the unit at which font sizes are observed:
//
//	doc := model.NewDocument()
//	page := model.NewPage(612, 792)
//	page.AddBlock(model.TextBlock(model.NewLine(model.Span{Text: "Intro", Size: 18})))
//	doc.AddPage(page)
//
// # Results
//
// Extraction produces a [Result]: a title and an ordered outline of
// [OutlineEntry] values, each carrying a [Level] (H1, H2 or H3), the heading
// text and a page number. Result marshals to the JSON artefact written per
// input document.
package model
