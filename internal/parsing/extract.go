package parsing

import (
	"regexp"
	"strings"
)

const (
	titleLineWindow   = 10
	companyLineWindow = 15
	companyMaxWords   = 4
)

var (
	titleFromLine = regexp.MustCompile(`(?i)^(?:title|role)\s*:\s*(.+)$`)
	titleCues     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:looking\s+for|hiring|seeking)\s+(?:an?\s+)?([a-z][a-z0-9+/ .\-]{2,}?(?:developer|engineer|manager|scientist|designer))\b`),
		regexp.MustCompile(`(?i)\bjoin\s+(?:our|the)\s+team\s+(?:as\s+an|as\s+a|as)?\s+([a-z][a-z0-9+/ .\-]{2,}?(?:developer|engineer|manager|scientist|designer))\b`),
	}
	titleFallback = regexp.MustCompile(`(?i)\b(front[\s-]?end\s+engineer|front[\s-]?end\s+developer|full\s+stack\s+developer)\b`)

	companyLine = regexp.MustCompile(`(?i)^company\s*:\s*(.+)$`)
	companyAt   = regexp.MustCompile(`^\s*(?i:at)\s+([A-Z][\w&.\-]*(?:[ \t]+[A-Z][\w&.\-]*)*)`)
	companyWhy  = regexp.MustCompile(`^\s*(?i:why)\s+([A-Z][A-Za-z0-9&.\- ]+)\?`)

	seniorityWord = regexp.MustCompile(`(?i)\b(junior|jr\.?|entry[-\s]?level|mid|intermediate|senior|sr\.?|lead|staff|principal)\b`)
)

// extractTitle looks for an explicit "Title:" line, then hiring cue phrases,
// then a few well-known role names anywhere in the text.
func extractTitle(text string, lines []string) string {
	for _, line := range head(lines, titleLineWindow) {
		if m := titleFromLine.FindStringSubmatch(line); m != nil {
			return TitleCaseWords(strings.TrimSpace(m[1]))
		}
	}
	for _, re := range titleCues {
		if m := re.FindStringSubmatch(text); m != nil {
			return TitleCaseWords(strings.TrimSpace(m[1]))
		}
	}
	if m := titleFallback.FindString(text); m != "" {
		return TitleCaseWords(m)
	}
	return ""
}

// extractCompany checks the leading lines for "Company:", "At X" and "Why X?"
// patterns, then accepts a short title-cased first line.
func extractCompany(lines []string) string {
	for _, line := range head(lines, companyLineWindow) {
		for _, re := range []*regexp.Regexp{companyLine, companyAt, companyWhy} {
			if m := re.FindStringSubmatch(line); m != nil {
				return cleanCompany(m[1])
			}
		}
	}
	if len(lines) > 0 && !isSectionHeader(lines[0]) {
		first := lines[0]
		if isTitleCased(first) && len(strings.Fields(first)) <= companyMaxWords {
			return cleanCompany(first)
		}
	}
	return ""
}

// isSectionHeader reports standalone or inline section headings, which are
// never company names
func isSectionHeader(line string) bool {
	if _, ok := matchHeader(line); ok {
		return true
	}
	_, _, ok := matchInlineHeader(line)
	return ok
}

func cleanCompany(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}

// extractSeniority returns the first seniority word in the text, normalized
func extractSeniority(text string) string {
	m := seniorityWord.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return NormalizeSeniority(m[1])
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
