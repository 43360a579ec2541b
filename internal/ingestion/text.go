// Package ingestion turns raw documents into normalized text lines.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-–—•●▪‣*]|[0-9]+\.)\s+`)

// Normalize applies NFKC compatibility normalization
func Normalize(s string) string {
	return norm.NFKC.String(s)
}

// Lines normalizes content and splits it into trimmed lines.
// Blank lines are kept as empty strings so callers can see paragraph breaks.
func Lines(content string) []string {
	content = Normalize(content)

	// CRLF → LF
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

// NonEmptyLines is Lines with blank lines dropped
func NonEmptyLines(content string) []string {
	lines := Lines(content)
	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Sentences splits text into sentences. Line breaks always end a sentence;
// within a line a sentence ends at '.', '!' or '?' followed by whitespace and
// an upper-case letter or digit.
func Sentences(text string) []string {
	var out []string
	for _, line := range NonEmptyLines(text) {
		runes := []rune(line)
		start := 0
		for i := 0; i < len(runes); i++ {
			if !isTerminator(runes[i]) {
				continue
			}
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j == i+1 || j >= len(runes) {
				continue
			}
			if unicode.IsUpper(runes[j]) || unicode.IsDigit(runes[j]) {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					out = append(out, s)
				}
				start = j
				i = j - 1
			}
		}
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// IsBullet reports whether a line starts with a bullet glyph or "N." marker
// followed by whitespace
func IsBullet(line string) bool {
	return bulletPrefix.MatchString(line)
}

// StripBullet removes a leading bullet marker and surrounding whitespace
func StripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

// IngestFromFile reads a document from disk, extracts its text, and returns it with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractText(content, filepath.Base(path))
	if err != nil {
		return "", nil, err
	}

	return text, NewMetadata(content, filepath.Base(path), text), nil
}
