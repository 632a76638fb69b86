package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/gen2brain/go-fitz"
)

// ExtractText converts an uploaded resume into plain lowercase text.
// Dispatch is by file extension; page and paragraph breaks become newlines.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".doc", ".docx":
		return extractDocx(path)
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %v", ErrExtractionFailed, err)
	}
	defer doc.Close()

	var text strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, n+1, err)
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return strings.ToLower(text.String()), nil
}

func extractDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening docx: %v", ErrExtractionFailed, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: reading docx: %v", ErrExtractionFailed, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: parsing docx: %v", ErrExtractionFailed, err)
	}

	var text strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			text.WriteString(para.String())
			text.WriteString("\n")
		}
	}
	return strings.ToLower(text.String()), nil
}
