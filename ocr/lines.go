package ocr

import "strings"

// FirstLine returns the first line of recognized text with surrounding
// whitespace removed. It returns "" for empty text, and "" when the first
// line is blank.
func FirstLine(s string) string {
	if s == "" {
		return ""
	}
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// FirstNonBlankLine returns the first line of recognized text that is not
// blank, trimmed, or "" if every line is blank.
func FirstNonBlankLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
