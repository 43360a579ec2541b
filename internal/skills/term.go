package skills

import (
	"regexp"
	"unicode/utf8"
)

// TermMatcher tests whether a term occurs in text as a whole token:
// case-insensitive, and not glued to an ASCII letter or digit on either side.
type TermMatcher struct {
	re *regexp.Regexp
}

// NewTermMatcher compiles a matcher for the literal term
func NewTermMatcher(term string) *TermMatcher {
	if term == "" {
		return &TermMatcher{}
	}
	return &TermMatcher{re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))}
}

// Match reports whether the term occurs in text with alphanumeric boundaries
func (m *TermMatcher) Match(text string) bool {
	if m.re == nil {
		return false
	}
	offset := 0
	for offset <= len(text) {
		loc := m.re.FindStringIndex(text[offset:])
		if loc == nil {
			return false
		}
		start, end := offset+loc[0], offset+loc[1]
		if !alnumBefore(text, start) && !alnumAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			return false
		}
		offset = start + size
	}
	return false
}

// ContainsTerm is a one-shot NewTermMatcher(term).Match(text)
func ContainsTerm(text, term string) bool {
	return NewTermMatcher(term).Match(text)
}

func alnumBefore(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return isASCIIAlnum(r)
}

func alnumAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return isASCIIAlnum(r)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
