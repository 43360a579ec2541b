// Package parsing extracts structured facts from job-description text using
// line-oriented heuristics and the skill dictionary.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// JobParser parses job descriptions. It holds only read-only resources and is
// safe for concurrent use.
type JobParser struct {
	dict     *skills.Dictionary
	analyzer nlp.Analyzer
}

// NewJobParser creates a parser over a dictionary and analyzer
func NewJobParser(dict *skills.Dictionary, analyzer nlp.Analyzer) *JobParser {
	return &JobParser{dict: dict, analyzer: analyzer}
}

// ParseJobDescription is a convenience wrapper around NewJobParser(...).Parse
func ParseJobDescription(rawText string, dict *skills.Dictionary, analyzer nlp.Analyzer) *types.ParsedJD {
	return NewJobParser(dict, analyzer).Parse(rawText)
}

// Parse extracts title, company, seniority, requirements and responsibilities.
// It never fails: absent facts are nil or empty.
func (p *JobParser) Parse(rawText string) *types.ParsedJD {
	lines := ingestion.NonEmptyLines(rawText)
	text := strings.Join(lines, "\n")

	sections := sliceSections(lines)
	reqs := make(requirementSet)

	for _, item := range toItems(sections[sectionMust], p.analyzer) {
		p.addFromText(reqs, item, types.PriorityMust)
	}
	for _, item := range toItems(sections[sectionNice], p.analyzer) {
		p.addFromText(reqs, item, types.PriorityNice)
	}

	// paragraph-style postings have no labeled requirement sections
	if len(reqs) == 0 {
		for _, sentence := range ingestion.Sentences(text) {
			p.addFromText(reqs, sentence, fallbackPriority(sentence))
		}
	}

	return &types.ParsedJD{
		Title:            types.StringPtr(extractTitle(text, lines)),
		Company:          types.StringPtr(extractCompany(lines)),
		Seniority:        types.StringPtr(extractSeniority(text)),
		Requirements:     reqs.hardOnly(p.dict),
		Responsibilities: toItems(sections[sectionResponsibilities], p.analyzer),
	}
}
