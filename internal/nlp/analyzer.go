// Package nlp provides the linguistic capabilities the parsers depend on:
// locating dictionary aliases in text and deciding whether a line opens with a verb.
package nlp

import "github.com/jonathan/resume-matcher/internal/skills"

// Span is an alias occurrence within a text
type Span = skills.Span

// Analyzer is the linguistic capability injected into the parsers
type Analyzer interface {
	// FindAliasSpans returns non-overlapping dictionary alias matches,
	// longest match first on overlap, ordered by position.
	FindAliasSpans(text string) []Span
	// LeadingTokenIsVerb reports whether the first word of line is a verb.
	LeadingTokenIsVerb(line string) bool
}
