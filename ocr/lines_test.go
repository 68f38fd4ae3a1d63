package ocr

import "testing"

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Title\nBody", "Title"},
		{"  Title  \r\nBody", "Title"},
		{"\nTitle", ""},
		{"   \n\nTitle", ""},
		{"only", "only"},
	}

	for _, tt := range tests {
		if got := FirstLine(tt.in); got != tt.want {
			t.Errorf("FirstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstNonBlankLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"\n\n  \n", ""},
		{"\n\n  Annual Report \nBody", "Annual Report"},
		{"Title\r\nBody", "Title"},
		{"\f\nHeader", "Header"},
	}

	for _, tt := range tests {
		if got := FirstNonBlankLine(tt.in); got != tt.want {
			t.Errorf("FirstNonBlankLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
