// Package skills holds the skill dictionary: canonical skill names, their
// aliases, and the phrase matcher used to find aliases in free text.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// Type classifies a skill
type Type string

const (
	// TypeHard is a technical skill; unknown types are treated as hard
	TypeHard Type = "hard"
	// TypeSoft is an interpersonal skill, excluded from job requirements
	TypeSoft Type = "soft"
)

// Row is one raw dictionary record as read from a source
type Row struct {
	Skill   string
	Aliases string // comma-separated
	Type    string
}

// Entry is a canonical skill with its aliases. The canonical name is always
// the first alias.
type Entry struct {
	Canonical string
	Type      Type
	Aliases   []string
}

// Dictionary maps aliases to canonical skills. It is immutable once built and
// safe for concurrent use.
type Dictionary struct {
	entries map[string]Entry
	order   []string
	aliases map[string]string // lower-cased alias -> canonical
	matcher *PhraseMatcher
}

// NewDictionary builds a dictionary from raw rows. Rows with an empty skill are
// skipped. When two rows claim the same alias the later row wins, except that
// a canonical name always resolves to itself.
func NewDictionary(rows []Row) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]Entry),
		aliases: make(map[string]string),
	}

	for _, row := range rows {
		canonical := strings.TrimSpace(ingestion.Normalize(row.Skill))
		if canonical == "" {
			continue
		}

		aliases := []string{canonical}
		for _, a := range strings.Split(row.Aliases, ",") {
			if a = strings.TrimSpace(ingestion.Normalize(a)); a != "" {
				aliases = append(aliases, a)
			}
		}

		if _, exists := d.entries[canonical]; !exists {
			d.order = append(d.order, canonical)
		}
		d.entries[canonical] = Entry{
			Canonical: canonical,
			Type:      parseType(row.Type),
			Aliases:   aliases,
		}
		for _, a := range aliases {
			d.aliases[strings.ToLower(a)] = canonical
		}
	}

	// canonical names take precedence over aliases of other skills
	for _, canonical := range d.order {
		d.aliases[strings.ToLower(canonical)] = canonical
	}

	keys := make([]string, 0, len(d.aliases))
	for k := range d.aliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	d.matcher = NewPhraseMatcher(keys)

	return d
}

func parseType(raw string) Type {
	if strings.ToLower(strings.TrimSpace(raw)) == string(TypeSoft) {
		return TypeSoft
	}
	return TypeHard
}

// Canonical resolves an alias (case-insensitive) to its canonical skill name
func (d *Dictionary) Canonical(alias string) (string, bool) {
	c, ok := d.aliases[strings.ToLower(strings.TrimSpace(alias))]
	return c, ok
}

// Canonicalize returns the canonical name for s, or s unchanged when it is not a known alias
func (d *Dictionary) Canonicalize(s string) string {
	if c, ok := d.Canonical(s); ok {
		return c
	}
	return s
}

// IsHard reports whether a canonical skill is a hard skill. Skills missing
// from the dictionary count as hard.
func (d *Dictionary) IsHard(canonical string) bool {
	e, ok := d.entries[canonical]
	return !ok || e.Type != TypeSoft
}

// Entry returns the entry for a canonical skill
func (d *Dictionary) Entry(canonical string) (Entry, bool) {
	e, ok := d.entries[canonical]
	return e, ok
}

// Entries returns all entries in source order
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, 0, len(d.order))
	for _, c := range d.order {
		out = append(out, d.entries[c])
	}
	return out
}

// Len returns the number of canonical skills
func (d *Dictionary) Len() int {
	return len(d.order)
}

// AliasCount returns the number of distinct aliases, canonical names included
func (d *Dictionary) AliasCount() int {
	return len(d.aliases)
}

// Matcher returns the phrase matcher over every alias
func (d *Dictionary) Matcher() *PhraseMatcher {
	return d.matcher
}
