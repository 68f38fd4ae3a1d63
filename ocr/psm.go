package ocr

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSegMode is a Tesseract page segmentation mode. Values use Tesseract's
// own numbering (0 to 13).
type PageSegMode int

// Modes that make sense for a rendered page. Others are reachable by number.
const (
	PageSegAuto         PageSegMode = 3
	PageSegSingleColumn PageSegMode = 4
	PageSegSingleBlock  PageSegMode = 6
	PageSegSparseText   PageSegMode = 11
)

// maxPageSegMode is the highest mode Tesseract defines (raw line).
const maxPageSegMode = 13

var pageSegModeNames = map[string]PageSegMode{
	"auto":   PageSegAuto,
	"column": PageSegSingleColumn,
	"block":  PageSegSingleBlock,
	"sparse": PageSegSparseText,
}

// String returns the mode's config name, or its number.
func (m PageSegMode) String() string {
	for name, v := range pageSegModeNames {
		if v == m {
			return name
		}
	}
	return strconv.Itoa(int(m))
}

// Valid reports whether Tesseract defines m.
func (m PageSegMode) Valid() bool {
	return m >= 0 && m <= maxPageSegMode
}

// ParsePageSegMode accepts a mode name (auto, column, block, sparse) or a
// Tesseract mode number.
func ParsePageSegMode(s string) (PageSegMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m, ok := pageSegModeNames[s]; ok {
		return m, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !PageSegMode(n).Valid() {
		return 0, fmt.Errorf("unknown page segmentation mode %q", s)
	}
	return PageSegMode(n), nil
}
