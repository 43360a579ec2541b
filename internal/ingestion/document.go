package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Document formats recognized by ExtractText
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
	FormatText = "text"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// ExtractText converts an uploaded document to plain text.
// The extension selects the decoder; for unknown extensions PDF is tried,
// then DOCX, then the bytes are accepted as text if they look textual.
func ExtractText(data []byte, filename string) (string, error) {
	var decode func([]byte) (string, error)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		decode = extractPDF
	case ".docx":
		decode = extractDOCX
	case ".html", ".htm":
		decode = extractHTML
	case ".txt", ".md", ".text":
		if !utf8.Valid(data) {
			return "", &ExtractionError{Filename: filename, Message: "text file is not valid UTF-8"}
		}
		return string(data), nil
	}
	if decode != nil {
		text, err := decode(data)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Message: "could not extract text", Cause: err}
		}
		return text, nil
	}

	if text, err := extractPDF(data); err == nil {
		return text, nil
	}
	if text, err := extractDOCX(data); err == nil {
		return text, nil
	}
	if !isPDF(data) && !isZip(data) && looksTextual(data) {
		return string(data), nil
	}
	return "", &ExtractionError{Filename: filename, Message: "could not extract text"}
}

// extractPDF reads the text layer of a PDF row by row.
func extractPDF(data []byte) (text string, err error) {
	if !isPDF(data) {
		return "", errors.New("missing %PDF- header")
	}
	// the pdf reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// extractDOCX reads word/document.xml and maps paragraphs to lines.
func extractDOCX(data []byte) (string, error) {
	if !isZip(data) {
		return "", errors.New("not a zip archive")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func isPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

func isZip(data []byte) bool {
	return bytes.HasPrefix(data, []byte("PK"))
}

// looksTextual accepts valid UTF-8 whose first 1000 runes are mostly printable
func looksTextual(data []byte) bool {
	if len(data) == 0 || !utf8.Valid(data) {
		return false
	}
	sample := string(data)
	total, bad := 0, 0
	for _, r := range sample {
		if total == 1000 {
			break
		}
		total++
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			bad++
		}
	}
	return float64(bad)/float64(total) <= 0.3
}
