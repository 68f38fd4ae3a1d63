package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies the recognition model used when a page has to be
// read by OCR. Code is the Tesseract traineddata selector, which may combine
// several models with "+".
type Language struct {
	Code string
	Tags []language.Tag
}

// Supported languages.
var (
	English      = Language{Code: "eng", Tags: []language.Tag{language.English}}
	HindiMarathi = Language{Code: "hin+mar", Tags: []language.Tag{language.Hindi, language.Marathi}}
	Japanese     = Language{Code: "jpn", Tags: []language.Tag{language.Japanese}}
)

// String returns the Tesseract code.
func (l Language) String() string {
	return l.Code
}

// IsZero reports whether l is the zero Language.
func (l Language) IsZero() bool {
	return l.Code == ""
}

// DetectLanguage classifies sample text by the scripts it contains. Rules are
// checked in priority order and the first match wins: any Devanagari selects
// HindiMarathi, then any kana or CJK ideograph selects Japanese. Anything else,
// including an empty sample, is English.
func DetectLanguage(sample string) Language {
	if strings.IndexFunc(sample, isDevanagari) >= 0 {
		return HindiMarathi
	}
	if strings.IndexFunc(sample, isJapanese) >= 0 {
		return Japanese
	}
	return English
}

var supported = []Language{English, HindiMarathi, Japanese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.Marathi,
	language.Japanese,
})

// ParseLanguage resolves a configured language. It accepts a Tesseract code
// ("eng", "jpn", "hin+mar") or a BCP 47 tag ("en-GB", "ja", "mr"), which is
// matched against the supported languages.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Language{}, fmt.Errorf("empty language")
	}
	for _, l := range supported {
		if strings.EqualFold(s, l.Code) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return Language{}, fmt.Errorf("unknown language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Language{}, fmt.Errorf("unsupported language %q", s)
	}
	switch idx {
	case 0:
		return English, nil
	case 1, 2:
		return HindiMarathi, nil
	default:
		return Japanese, nil
	}
}

// isDevanagari reports whether r is in the Devanagari block (U+0900–U+097F).
func isDevanagari(r rune) bool {
	return r >= 0x0900 && r <= 0x097F
}

// isJapanese reports whether r is Japanese script.
// This includes:
//   - Hiragana and Katakana: U+3040–U+30FF
//   - CJK Unified Ideographs: U+4E00–U+9FFF
func isJapanese(r rune) bool {
	return (r >= 0x3040 && r <= 0x30FF) ||
		(r >= 0x4E00 && r <= 0x9FFF)
}
