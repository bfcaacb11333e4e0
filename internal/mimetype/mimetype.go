package mimetype

import (
	"path/filepath"
	"strings"
)

// DefaultType is returned for extensions outside the table.
const DefaultType = "application/octet-stream"

var byExtension = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain",
	".html": "text/html",
	".htm":  "text/html",
}

// ForFilename returns the MIME type for a filename's extension, matched
// case-insensitively. Unknown extensions map to DefaultType.
func ForFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if mt, ok := byExtension[ext]; ok {
		return mt
	}
	return DefaultType
}
