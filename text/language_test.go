package text

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   Language
	}{
		{"empty", "", English},
		{"latin", "Annual Report 2023", English},
		{"cyrillic falls back", "Годовой отчёт", English},
		{"hindi", "वार्षिक रिपोर्ट", HindiMarathi},
		{"marathi", "महाराष्ट्र शासन", HindiMarathi},
		{"hiragana", "ひらがな", Japanese},
		{"katakana", "カタカナ", Japanese},
		{"kanji", "年次報告書", Japanese},
		{"mixed latin and kanji", "Chapter 1 概要", Japanese},
		{"devanagari wins over kanji", "概要 सारांश", HindiMarathi},
		{"hangul is not japanese", "연례 보고서", English},
		{"range end U+097F", "ॿ", HindiMarathi},
		{"just outside devanagari", "ঀ", English},
		{"range end U+30FF", "ヿ", Japanese},
		{"range end U+9FFF", "鿿", Japanese},
		{"extension A is not matched", "㐀", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.sample); got.Code != tt.want.Code {
				t.Errorf("DetectLanguage(%q) = %s, want %s", tt.sample, got, tt.want)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"eng", "eng", false},
		{"JPN", "jpn", false},
		{"hin+mar", "hin+mar", false},
		{"en-GB", "eng", false},
		{"ja", "jpn", false},
		{"hi", "hin+mar", false},
		{"mr", "hin+mar", false},
		{"", "", true},
		{"not a tag!", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLanguage(%q) expected error, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got.Code != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLanguageTags(t *testing.T) {
	if HindiMarathi.Tags[1] != language.Marathi {
		t.Errorf("expected Marathi tag, got %v", HindiMarathi.Tags[1])
	}
	if !(Language{}).IsZero() {
		t.Error("zero Language should report IsZero")
	}
	if English.IsZero() {
		t.Error("English should not be zero")
	}
}
