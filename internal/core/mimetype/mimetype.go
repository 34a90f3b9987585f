package mimetype

import (
	"mime"
	"path/filepath"
	"strings"
)

// fallbackType is returned when nothing else matches.
const fallbackType = "application/pdf"

// extTypes covers the document and image formats the processor accepts,
// for platforms whose extension registry misses the office types.
var extTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".webp": "image/webp",
	".txt":  "text/plain",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".ppt":  "application/vnd.ms-powerpoint",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
}

// Resolve maps a file path to a MIME type. It asks the platform
// registry first, then the fixed table, and never returns an empty
// string: unknown extensions resolve to application/pdf.
func Resolve(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	if t := mime.TypeByExtension(ext); t != "" {
		// The registry may append parameters ("text/plain; charset=utf-8").
		if media, _, err := mime.ParseMediaType(t); err == nil {
			return media
		}
	}

	if t, ok := extTypes[ext]; ok {
		return t
	}
	return fallbackType
}
