package layout

import (
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/pdfoutline/model"
)

// maxPageNumberDigits bounds the length of a printed page number.
const maxPageNumberDigits = 4

// VisiblePageNumber finds the page number printed on a page: the first line,
// in block-then-line order, whose trimmed text is one to four decimal digits.
// Digits of any script are accepted. The second result is false when no such
// line exists.
//
// Any digit-only line qualifies, including numeric body text such as a year
// on a line of its own.
func VisiblePageNumber(page *model.Page) (int, bool) {
	if page == nil {
		return 0, false
	}
	for _, line := range page.Lines() {
		if n, ok := parsePageNumber(line.Text()); ok {
			return n, true
		}
	}
	return 0, false
}

// parsePageNumber parses s if it consists solely of 1-4 decimal digits.
func parsePageNumber(s string) (int, bool) {
	count := utf8.RuneCountInString(s)
	if count == 0 || count > maxPageNumberDigits {
		return 0, false
	}

	n := 0
	for _, r := range s {
		d, ok := digitValue(r)
		if !ok {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// digitValue returns the numeric value of a decimal digit rune. Unicode
// encodes every decimal digit set as a contiguous run starting at zero, so
// the value is the distance from the start of the run modulo ten.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10, true
}
