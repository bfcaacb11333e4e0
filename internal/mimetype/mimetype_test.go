package mimetype

import "testing"

func TestForFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"result.pdf", "application/pdf"},
		{"report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"slides.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
		{"sheet.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"notes.txt", "text/plain"},
		{"page.html", "text/html"},
		{"page.htm", "text/html"},
		{"REPORT.PDF", "application/pdf"},
		{"archive.xyz", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tc := range cases {
		if got := ForFilename(tc.filename); got != tc.want {
			t.Errorf("ForFilename(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}
