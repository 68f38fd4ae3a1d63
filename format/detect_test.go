package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{JSON, "JSON"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{JSON, ".json"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.pdf", PDF},
		{"document.PDF", PDF},
		{"document.Pdf", PDF},
		{"/path/to/report.pdf", PDF},
		{"result.json", JSON},
		{"result.JSON", JSON},
		{"notes.txt", Unknown},
		{"pdf", Unknown},
		{"archive.pdf.zip", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf header", []byte("%PDF-1.7\n"), PDF},
		{"pdf after garbage", []byte("\x00\x00junk%PDF-1.4\n"), PDF},
		{"json object", []byte(`  {"title": ""}`), JSON},
		{"json with bom", []byte("\xef\xbb\xbf[1]"), JSON},
		{"percent only", []byte("%PD"), Unknown},
		{"text", []byte("hello"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestResultName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.json"},
		{"Report.PDF", "Report.json"},
		{"/in/dir/file.pdf", "file.json"},
		{"my.report.v2.pdf", "my.report.v2.json"},
		{"noext", "noext.json"},
	}

	for _, tt := range tests {
		if got := ResultName(tt.in, JSON); got != tt.want {
			t.Errorf("ResultName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
