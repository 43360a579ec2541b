package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// section identifies which part of a job description a line belongs to
type section int

const (
	sectionNone section = iota
	sectionResponsibilities
	sectionMust
	sectionNice
)

// headers maps normalized header text to its section. Headers mapped to
// sectionNone are recognized so that they close the previous section.
var headers = map[string]section{
	"responsibilities":         sectionResponsibilities,
	"you will":                 sectionResponsibilities,
	"you'll":                   sectionResponsibilities,
	"what you'll do":           sectionResponsibilities,
	"what you will do":         sectionResponsibilities,
	"basic qualifications":     sectionMust,
	"minimum qualifications":   sectionMust,
	"qualifications":           sectionMust,
	"requirements":             sectionMust,
	"preferred qualifications": sectionNice,
	"other qualifications":     sectionNice,
	"nice to have":             sectionNice,
	"about the role":           sectionNone,
	"about the team":           sectionNone,
	"benefits":                 sectionNone,
	"about":                    sectionNone,
	"overview":                 sectionNone,
	"role":                     sectionNone,
}

var inlineHeader = regexp.MustCompile(`^([^:]{2,40}):\s*(\S.*)$`)

func headerKey(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// matchHeader reports whether line is a bare section header, optionally
// followed by a colon.
func matchHeader(line string) (section, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimSpace(strings.TrimSuffix(s, ":"))
	sec, ok := headers[headerKey(s)]
	return sec, ok
}

// matchInlineHeader recognizes "Requirements: Python and Go" style lines for
// the three content sections and returns the text after the colon.
func matchInlineHeader(line string) (section, string, bool) {
	m := inlineHeader.FindStringSubmatch(line)
	if m == nil {
		return sectionNone, "", false
	}
	sec, ok := headers[headerKey(m[1])]
	if !ok || sec == sectionNone {
		return sectionNone, "", false
	}
	return sec, strings.TrimSpace(m[2]), true
}

// sectionLine is a raw line collected under a section header. Forced lines
// came from an inline header and are always treated as items.
type sectionLine struct {
	text   string
	forced bool
}

// sliceSections walks the lines, tracking the current header, and collects
// the lines under each content section.
func sliceSections(lines []string) map[section][]sectionLine {
	out := make(map[section][]sectionLine)
	current := sectionNone
	for _, line := range lines {
		if sec, ok := matchHeader(line); ok {
			current = sec
			continue
		}
		if sec, rest, ok := matchInlineHeader(line); ok {
			current = sec
			out[sec] = append(out[sec], sectionLine{text: rest, forced: true})
			continue
		}
		if current != sectionNone {
			out[current] = append(out[current], sectionLine{text: line})
		}
	}
	return out
}

// toItems keeps bullet lines (with the marker stripped) and verb-led lines,
// deduplicated in order of first appearance.
func toItems(raw []sectionLine, analyzer nlp.Analyzer) []string {
	items := make([]string, 0, len(raw))
	for _, l := range raw {
		text := strings.TrimSpace(l.text)
		switch {
		case text == "":
			continue
		case ingestion.IsBullet(text):
			if stripped := ingestion.StripBullet(text); stripped != "" {
				items = append(items, stripped)
			}
		case l.forced || analyzer.LeadingTokenIsVerb(text):
			items = append(items, text)
		}
	}
	return dedupe(items)
}
