// Package resume extracts identity, work history, projects, skills and
// education from résumé text with a single forward pass over its lines.
package resume

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// IDFunc generates bullet identifiers
type IDFunc func() string

// DefaultIDFunc returns "b_" followed by 8 random hex characters
func DefaultIDFunc() string {
	return "b_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Options configures a Parser
type Options struct {
	// IDFunc overrides bullet ID generation. Defaults to DefaultIDFunc.
	IDFunc IDFunc
}

// Parser parses résumés against a shared dictionary and analyzer. It keeps
// no per-call state and is safe for concurrent use.
type Parser struct {
	dict     *skills.Dictionary
	analyzer nlp.Analyzer
	newID    IDFunc
}

// NewParser creates a Parser. opts may be nil.
func NewParser(dict *skills.Dictionary, analyzer nlp.Analyzer, opts *Options) *Parser {
	p := &Parser{dict: dict, analyzer: analyzer, newID: DefaultIDFunc}
	if opts != nil && opts.IDFunc != nil {
		p.newID = opts.IDFunc
	}
	return p
}

// Parse walks the normalized lines of text and assembles a ResumeDocument
func (p *Parser) Parse(text string) *types.ResumeDocument {
	lines := ingestion.Lines(text)

	w := NewWalker(p.dict, p.analyzer, p.newID)
	for _, line := range lines {
		w.Step(line)
	}
	res := w.Flush()

	normalized := strings.Join(lines, "\n")
	return &types.ResumeDocument{
		Basics: types.Basics{
			Name:  types.StringPtr(extractName(lines)),
			Email: types.StringPtr(extractEmail(normalized)),
			Links: extractLinks(normalized),
		},
		Experience: res.Experience,
		Projects:   res.Projects,
		Skills:     res.Skills,
		Education:  res.Education,
	}
}

// ParseBytes extracts text from a PDF, DOCX, HTML or plain-text document and
// parses it. Extraction failures and empty documents return *InputError.
func (p *Parser) ParseBytes(data []byte, filename string) (*types.ResumeDocument, error) {
	text, err := ingestion.ExtractText(data, filename)
	if err != nil {
		return nil, &InputError{Filename: filename, Message: "could not extract text", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &InputError{Filename: filename, Message: "document contains no text"}
	}
	return p.Parse(text), nil
}

// Parse is a convenience wrapper around NewParser(dict, analyzer, nil).Parse
func Parse(text string, dict *skills.Dictionary, analyzer nlp.Analyzer) *types.ResumeDocument {
	return NewParser(dict, analyzer, nil).Parse(text)
}

// ParseBytes is a convenience wrapper around NewParser(dict, analyzer, nil).ParseBytes
func ParseBytes(data []byte, filename string, dict *skills.Dictionary, analyzer nlp.Analyzer) (*types.ResumeDocument, error) {
	return NewParser(dict, analyzer, nil).ParseBytes(data, filename)
}
