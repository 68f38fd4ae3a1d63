package layout

import "github.com/tsawler/pdfoutline/model"

// TitleLines returns the text of every non-empty line on the page whose
// largest span matches the largest span anywhere on the page, in traversal
// order. A title set in one size across several lines is returned whole.
func TitleLines(page *model.Page) []string {
	if page == nil {
		return nil
	}

	// Computed once; every line is compared against the same page maximum.
	biggest := page.MaxSize()
	if biggest == 0 {
		return nil
	}

	var lines []string
	for _, line := range page.Lines() {
		text := line.Text()
		if text == "" {
			continue
		}
		if size := line.MaxSize(); size != 0 && size == biggest {
			lines = append(lines, text)
		}
	}
	return lines
}
