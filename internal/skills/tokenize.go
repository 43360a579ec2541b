package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// token is a word of text with its byte offsets in the source string
type token struct {
	text       string
	start, end int
}

// separators are always emitted as single-character tokens
const separators = `()[]{}"“”/,;|•·`

// leadPunct and trailPunct are peeled off word edges
const (
	leadPunct  = `'‘«<`
	trailPunct = `'’»>:!?.`
)

// tokenize splits text into word tokens. Characters such as '+', '#' and
// inner '.' stay inside words so "C++", "C#" and "Node.js" are single tokens.
// A leading '.' is kept when a letter or digit follows it, as in ".NET".
func tokenize(text string) []token {
	var tokens []token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		tokens = splitField(text, start, i, tokens)
	}
	return tokens
}

// splitField breaks a whitespace-free field into tokens and appends them.
func splitField(text string, start, end int, tokens []token) []token {
	pieceStart := start
	for pos := start; pos < end; {
		r, size := utf8.DecodeRuneInString(text[pos:end])
		if strings.ContainsRune(separators, r) {
			tokens = appendPiece(text, pieceStart, pos, tokens)
			tokens = append(tokens, token{text: text[pos : pos+size], start: pos, end: pos + size})
			pieceStart = pos + size
		}
		pos += size
	}
	return appendPiece(text, pieceStart, end, tokens)
}

// appendPiece peels edge punctuation off text[start:end] and appends the parts.
func appendPiece(text string, start, end int, tokens []token) []token {
	if start >= end {
		return tokens
	}

	var lead []token
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if r == '.' && start+size < end {
			next, _ := utf8.DecodeRuneInString(text[start+size : end])
			if unicode.IsLetter(next) || unicode.IsDigit(next) {
				break
			}
		}
		if r != '.' && !strings.ContainsRune(leadPunct, r) {
			break
		}
		lead = append(lead, token{text: text[start : start+size], start: start, end: start + size})
		start += size
	}

	var trail []token
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !strings.ContainsRune(trailPunct, r) {
			break
		}
		trail = append(trail, token{text: text[end-size : end], start: end - size, end: end})
		end -= size
	}

	// possessive "'s" becomes its own token
	for _, suffix := range []string{"'s", "’s"} {
		if end-start > len(suffix) && strings.EqualFold(text[end-len(suffix):end], suffix) {
			trail = append(trail, token{text: text[end-len(suffix) : end], start: end - len(suffix), end: end})
			end -= len(suffix)
			break
		}
	}

	tokens = append(tokens, lead...)
	if start < end {
		tokens = append(tokens, token{text: text[start:end], start: start, end: end})
	}
	for i := len(trail) - 1; i >= 0; i-- {
		tokens = append(tokens, trail[i])
	}
	return tokens
}

// tokenKeys returns the lower-cased token texts of s
func tokenKeys(s string) []string {
	toks := tokenize(s)
	keys := make([]string, len(toks))
	for i, t := range toks {
		keys[i] = strings.ToLower(t.text)
	}
	return keys
}
