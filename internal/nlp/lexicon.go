package nlp

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/skills"
)

//go:embed verbs.txt
var verbsFile string

// Lexicon is a rule-based Analyzer backed by the skill dictionary and a
// closed list of action verbs.
type Lexicon struct {
	dict  *skills.Dictionary
	verbs map[string]struct{}
}

// NewLexicon builds a Lexicon over dict using the embedded verb list
func NewLexicon(dict *skills.Dictionary) *Lexicon {
	return &Lexicon{dict: dict, verbs: parseVerbs(verbsFile)}
}

// FindAliasSpans implements Analyzer
func (l *Lexicon) FindAliasSpans(text string) []Span {
	return l.dict.Matcher().FindSpans(text)
}

// LeadingTokenIsVerb implements Analyzer. Bullet markers and edge punctuation
// are ignored; a first word that is a known skill alias is never a verb.
func (l *Lexicon) LeadingTokenIsVerb(line string) bool {
	word := firstWord(ingestion.StripBullet(line))
	if word == "" {
		return false
	}
	if _, isSkill := l.dict.Canonical(word); isSkill {
		return false
	}
	_, ok := l.verbs[strings.ToLower(word)]
	return ok
}

// VerbCount returns the number of inflected verb forms known
func (l *Lexicon) VerbCount() int {
	return len(l.verbs)
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// parseVerbs reads one verb per line: the base form optionally followed by
// irregular forms. Regular -s, -ed and -ing forms are derived from the base.
func parseVerbs(src string) map[string]struct{} {
	verbs := make(map[string]struct{})
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		forms := strings.Fields(strings.ToLower(line))
		for _, f := range inflect(forms[0]) {
			verbs[f] = struct{}{}
		}
		for _, f := range forms[1:] {
			verbs[f] = struct{}{}
		}
	}
	return verbs
}

func inflect(base string) []string {
	forms := []string{base}
	switch {
	case hasAnySuffix(base, "s", "x", "z", "ch", "sh"):
		forms = append(forms, base+"es")
	case consonantY(base):
		forms = append(forms, base[:len(base)-1]+"ies")
	default:
		forms = append(forms, base+"s")
	}
	switch {
	case strings.HasSuffix(base, "e"):
		forms = append(forms, base+"d")
	case consonantY(base):
		forms = append(forms, base[:len(base)-1]+"ied")
	default:
		forms = append(forms, base+"ed")
	}
	switch {
	case strings.HasSuffix(base, "ee"):
		forms = append(forms, base+"ing")
	case strings.HasSuffix(base, "e"):
		forms = append(forms, base[:len(base)-1]+"ing")
	default:
		forms = append(forms, base+"ing")
	}
	return forms
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func consonantY(s string) bool {
	if len(s) < 2 || !strings.HasSuffix(s, "y") {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(s[len(s)-2]))
}
