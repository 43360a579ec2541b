package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	mustHints = regexp.MustCompile(`(?i)\b(must[-\s]?have|required|required\s+skills|you\s+must|we\s+need|proficien\w+|proficient)\b`)

	languageList = regexp.MustCompile(`(?i)programming\s+languages?\s*\(([^)]+)\)`)
	listSplit    = regexp.MustCompile(`[,\x{FF0C}/]|\s+and\s+`)
	eitherOr     = regexp.MustCompile(`(?i)\beither\s+([A-Za-z0-9#+.]+)\s+(?:and/?or|or)\s+([A-Za-z0-9#+.]+)`)
)

// trickySkills are names the tokenizer-based matcher can miss when they are
// glued to punctuation or other words. They are found as case-insensitive
// substrings, so "ASP.NET" yields .NET and "C++17" yields C++.
var trickySkills = []string{"C++", "C#", ".NET", "Node.js"}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// requirementSet accumulates canonical skills with escalating priority
type requirementSet map[string]types.Priority

func (r requirementSet) add(skill string, p types.Priority) {
	if old, ok := r[skill]; ok {
		r[skill] = types.MergePriority(old, p)
		return
	}
	r[skill] = p
}

// hardOnly returns hard-skill requirements sorted by skill name
func (r requirementSet) hardOnly(dict *skills.Dictionary) []types.Requirement {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.Requirement, 0, len(names))
	for _, name := range names {
		if dict.IsHard(name) {
			out = append(out, types.Requirement{Skill: name, Priority: r[name]})
		}
	}
	return out
}

// addFromText records every skill mentioned in s. A must-hint anywhere in s
// escalates the priority of everything found in it.
func (p *JobParser) addFromText(reqs requirementSet, s string, defaultPriority types.Priority) {
	priority := defaultPriority
	if mustHints.MatchString(s) {
		priority = types.PriorityMust
	}

	for _, span := range p.analyzer.FindAliasSpans(s) {
		if c, ok := p.dict.Canonical(span.Alias); ok {
			reqs.add(c, priority)
		}
	}
	for _, c := range p.collectByPhrase(s) {
		reqs.add(c, priority)
	}
}

// collectByPhrase finds skills the phrase matcher can miss: parenthesized
// language lists, "either X or Y" pairs, and punctuation-heavy names.
func (p *JobParser) collectByPhrase(s string) []string {
	var found []string
	addOnce := func(c string) {
		for _, f := range found {
			if f == c {
				return
			}
		}
		found = append(found, c)
	}

	for _, m := range languageList.FindAllStringSubmatch(s, -1) {
		for _, item := range listSplit.Split(m[1], -1) {
			if c, ok := p.dict.Canonical(strings.TrimSpace(item)); ok {
				addOnce(c)
			}
		}
	}
	for _, m := range eitherOr.FindAllStringSubmatch(s, -1) {
		for _, item := range m[1:3] {
			if c, ok := p.dict.Canonical(strings.TrimRight(item, ".")); ok {
				addOnce(c)
			}
		}
	}
	for _, label := range trickySkills {
		if containsFold(s, label) {
			addOnce(p.dict.Canonicalize(label))
		}
	}
	return found
}

// fallbackPriority decides the default priority of a free-text sentence
func fallbackPriority(sentence string) types.Priority {
	if mustHints.MatchString(sentence) {
		return types.PriorityMust
	}
	return types.PriorityNice
}
