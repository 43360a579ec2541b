package parsing

import (
	"strings"
	"unicode"
)

// seniorityLevels maps matched seniority words to the normalized vocabulary
var seniorityLevels = map[string]string{
	"junior":       "junior",
	"jr":           "junior",
	"jr.":          "junior",
	"entry-level":  "junior",
	"entry level":  "junior",
	"entrylevel":   "junior",
	"mid":          "mid",
	"intermediate": "mid",
	"senior":       "senior",
	"sr":           "senior",
	"sr.":          "senior",
	"lead":         "lead",
	"staff":        "staff",
	"principal":    "principal",
}

// NormalizeSeniority maps a seniority word to junior, mid, senior, lead, staff
// or principal. Unknown words return "".
func NormalizeSeniority(word string) string {
	key := strings.Join(strings.Fields(strings.ToLower(word)), " ")
	return seniorityLevels[key]
}

// TitleCaseWords capitalizes each word and lower-cases the rest of it. Words
// containing '+', '#' or '.' are left untouched so "C++" and "Node.js" survive.
func TitleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if strings.ContainsAny(w, "+#.") {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// isTitleCased reports whether every cased run in s starts with an upper-case
// letter followed only by lower-case letters, with at least one cased letter.
func isTitleCased(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// dedupe returns items with duplicates removed, keeping first occurrences
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
