package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Metadata describes an ingested document
type Metadata struct {
	Filename string `json:"filename,omitempty"`
	URL      string `json:"url,omitempty"`
	// Platform is the detected job board, set for URL ingestion only
	Platform string `json:"platform,omitempty"`
	// Rendered is set when the text came from a headless browser render
	Rendered  bool   `json:"rendered,omitempty"`
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	// Hash is the SHA256 hex digest of the raw bytes
	Hash  string `json:"hash"`
	Bytes int    `json:"bytes"`
	Chars int    `json:"chars"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(raw []byte, filename string, text string) *Metadata {
	return &Metadata{
		Filename:  filename,
		Format:    DetectFormat(raw, filename),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(raw),
		Bytes:     len(raw),
		Chars:     utf8.RuneCountInString(text),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// DetectFormat names the document format from the extension, falling back to magic bytes
func DetectFormat(raw []byte, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".md", ".text":
		return FormatText
	}
	switch {
	case isPDF(raw):
		return FormatPDF
	case isZip(raw):
		return FormatDOCX
	default:
		return FormatText
	}
}
