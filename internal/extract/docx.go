package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// docxDocumentPath is the WordprocessingML main document part inside the
// DOCX zip container.
const docxDocumentPath = "word/document.xml"

// fromDOCX extracts paragraph text from a DOCX document. Paragraph runs are
// concatenated per paragraph and paragraphs are joined by newline.
func fromDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Message: "failed to open DOCX container", Cause: err}
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == docxDocumentPath {
			document = f
			break
		}
	}
	if document == nil {
		return "", &ParseError{Message: "DOCX container has no " + docxDocumentPath}
	}

	rc, err := document.Open()
	if err != nil {
		return "", &ParseError{Message: "failed to open " + docxDocumentPath, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return "", &ParseError{Message: "failed to parse " + docxDocumentPath, Cause: err}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// readParagraphs walks the WordprocessingML token stream collecting the text
// runs (<w:t>) of each paragraph (<w:p>) in document order.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	paragraphs := make([]string, 0)
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &el); err != nil {
					return nil, err
				}
				if inParagraph {
					current.WriteString(text)
				}
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, current.String())
				inParagraph = false
			}
		}
	}

	return paragraphs, nil
}
