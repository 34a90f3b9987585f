package picker

import (
	"errors"

	"github.com/ncruces/zenity"
)

var filters = zenity.FileFilters{
	{Name: "PDF files", Patterns: []string{"*.pdf"}},
	{Name: "Word documents", Patterns: []string{"*.docx", "*.doc"}},
	{Name: "PowerPoint files", Patterns: []string{"*.pptx", "*.ppt"}},
	{Name: "Excel files", Patterns: []string{"*.xlsx", "*.xls"}},
	{Name: "Image files", Patterns: []string{"*.jpg", "*.jpeg", "*.png", "*.tiff", "*.tif", "*.bmp", "*.gif", "*.webp"}},
	{Name: "Text files", Patterns: []string{"*.txt"}},
	{Name: "All files", Patterns: []string{"*"}},
}

// Pick shows the native open-file dialog and blocks until the user
// responds. A dismissed dialog returns an empty path and no error.
func Pick() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select a document to process"),
		filters,
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
