package extract

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromUpload extracts plain text from an uploaded résumé. Only .pdf and .docx
// uploads (by extension, case-insensitive) are accepted. The whole file is
// processed in memory; text units (pages or paragraphs) are joined by newline
// in document order, and a unit whose text cannot be decoded contributes an
// empty string rather than failing the extraction.
func FromUpload(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDOCX(data)
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}
}

// fromPDF extracts per-page plain text from a PDF document.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Message: "failed to read PDF", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with undecodable fonts or content streams count as empty.
			text = ""
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
