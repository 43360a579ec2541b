package resume

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// section is the résumé part the walker is currently in
type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionProjects
	sectionSkills
	sectionEducation
)

var headings = []struct {
	section section
	re      *regexp.Regexp
}{
	{sectionExperience, regexp.MustCompile(`(?i)^(work\s+experience|professional\s+experience|experience|employment\s+history)\s*:?\s*$`)},
	{sectionProjects, regexp.MustCompile(`(?i)^(projects?|personal\s+projects?)\s*:?\s*$`)},
	{sectionSkills, regexp.MustCompile(`(?i)^(relevant\s+(coursework\s*&\s*)?skills|skills?|technical\s+skills|tech(nical)?\s+(stack|skills)|skills\s*&\s*(tools|technologies)|tools|tooling|languages\s*&\s*frameworks?)\s*:?\s*$`)},
	{sectionEducation, regexp.MustCompile(`(?i)^(education|education\s*&\s*certifications|education\s+and\s+certifications|certifications)\s*:?\s*$`)},
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?i)https?://[^\s)]+`)

	// header separators need whitespace on both sides so "cross-device" stays whole
	headerSeparators = []*regexp.Regexp{
		regexp.MustCompile(`\s-\s`),
		regexp.MustCompile(`\s–\s`),
		regexp.MustCompile(`\s—\s`),
	}

	// role and business hints match anywhere in a part: "Shopify" is a
	// business and "Leadership" a role
	titleHint    = regexp.MustCompile(`(?i)(developer|engineer|manager|lead|intern|analyst|designer|freelance)`)
	businessHint = regexp.MustCompile(`(?i)(inc|ltd|llc|corp|co|company|bar|cafe|shop|studio|solutions|systems|labs)`)

	projectNoun = regexp.MustCompile(`(?i)\b(app|project|clone)\b`)
	skillSplit  = regexp.MustCompile(`[;,/|•●·]+`)
)

const (
	jobHeaderMaxWords     = 10
	projectHeaderMaxWords = 14
)

func detectHeading(line string) (section, bool) {
	for _, h := range headings {
		if h.re.MatchString(line) {
			return h.section, true
		}
	}
	return sectionNone, false
}

// isContactLine reports lines holding an email, a URL, or a LinkedIn or
// portfolio mention
func isContactLine(line string) bool {
	low := strings.ToLower(line)
	if strings.Contains(low, "linkedin") || strings.Contains(low, "portfolio") {
		return true
	}
	return emailPattern.MatchString(line) || urlPattern.MatchString(line)
}

// splitHeader splits a candidate job header on " | ", falling back to the
// first space-padded dash that occurs in the line.
func splitHeader(line string) []string {
	if strings.Contains(line, " | ") {
		return nonEmptyParts(strings.Split(line, " | "))
	}
	for _, sep := range headerSeparators {
		if sep.MatchString(line) {
			return nonEmptyParts(sep.Split(line, -1))
		}
	}
	return []string{strings.TrimSpace(line)}
}

func nonEmptyParts(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// looksLikeJobHeader accepts 2 or 3 short parts without links where at least
// one part names a role or a business
func looksLikeJobHeader(parts []string) bool {
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	joined := strings.ToLower(strings.Join(parts, " "))
	if strings.Contains(joined, "http") || strings.Contains(joined, "linkedin") || strings.Contains(joined, "@") {
		return false
	}
	hint := false
	for _, p := range parts {
		if len(strings.Fields(p)) > jobHeaderMaxWords || strings.HasSuffix(p, ".") {
			return false
		}
		if titleHint.MatchString(p) || businessHint.MatchString(p) {
			hint = true
		}
	}
	return hint
}

// jobHeaderParts returns the header parts of line when it is a job header.
// Bullet lines are never headers.
func jobHeaderParts(line string) ([]string, bool) {
	if ingestion.IsBullet(line) {
		return nil, false
	}
	parts := splitHeader(line)
	if !looksLikeJobHeader(parts) {
		return nil, false
	}
	return parts, true
}

// guessCompanyTitle decides which of two header parts is the company and which
// the title. A role word marks the title, a business word marks the company;
// otherwise the parts are taken in order.
func guessCompanyTitle(a, b string) (company, title string) {
	aTitle, bTitle := titleHint.MatchString(a), titleHint.MatchString(b)
	switch {
	case aTitle && !bTitle:
		return b, a
	case bTitle && !aTitle:
		return a, b
	}
	aBiz, bBiz := businessHint.MatchString(a), businessHint.MatchString(b)
	if bBiz && !aBiz {
		return b, a
	}
	return a, b
}

// looksLikeProjectHeader recognizes lines such as "Quantra – Inventory App",
// "WayPoint: Travel Planner" or "The Body Shop clone".
func looksLikeProjectHeader(line string) bool {
	if line == "" || ingestion.IsBullet(line) {
		return false
	}
	if emailPattern.MatchString(line) || urlPattern.MatchString(line) {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	words := strings.Fields(line)
	if len(words) > projectHeaderMaxWords {
		return false
	}
	if strings.Contains(line, " – ") || strings.Contains(line, " — ") || strings.Contains(line, ":") {
		return true
	}
	if projectNoun.MatchString(line) {
		return true
	}

	caps := 0
	for _, w := range words {
		if r := []rune(w); unicode.IsUpper(r[0]) {
			caps++
		}
	}
	return len(words) > 0 && caps*2 >= len(words)
}

// splitSkillsLine drops an optional "Label:" prefix and splits the rest on
// list separators
func splitSkillsLine(line string) []string {
	core := ingestion.StripBullet(line)
	if _, rest, ok := strings.Cut(core, ":"); ok {
		core = rest
	}
	return nonEmptyParts(skillSplit.Split(core, -1))
}
