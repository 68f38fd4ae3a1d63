package layout

import "github.com/tsawler/pdfoutline/model"

// PageOutline returns an outline entry for every non-empty line on the page
// whose largest span size has a heading level, in traversal order.
//
// Entries report the page's visible page number when one is printed on it,
// otherwise the 0-based physical page index. The visible number is resolved
// once per page and only if the page has at least one heading.
func PageOutline(page *model.Page, levels SizeLevels) []model.OutlineEntry {
	if page == nil {
		return nil
	}

	var (
		entries  []model.OutlineEntry
		pageNum  int
		resolved bool
	)
	for _, line := range page.Lines() {
		text := line.Text()
		if text == "" {
			continue
		}
		level, ok := levels.Level(line.MaxSize())
		if !ok {
			continue
		}
		if !resolved {
			pageNum = page.Index
			if n, found := VisiblePageNumber(page); found {
				pageNum = n
			}
			resolved = true
		}
		entries = append(entries, model.OutlineEntry{
			Level: level,
			Text:  text,
			Page:  pageNum,
		})
	}
	return entries
}
