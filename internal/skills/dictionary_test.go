package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary() *Dictionary {
	return NewDictionary([]Row{
		{Skill: "Python", Aliases: "py, python3", Type: "hard"},
		{Skill: "JavaScript", Aliases: "js,ecmascript", Type: "hard"},
		{Skill: "Communication", Aliases: "communication skills", Type: "soft"},
		{Skill: "Kubernetes", Aliases: "k8s", Type: "tool"},
		{Skill: "  ", Aliases: "ignored"},
	})
}

func TestDictionary_Canonical(t *testing.T) {
	d := testDictionary()

	tests := []struct {
		alias    string
		expected string
		found    bool
	}{
		{"python", "Python", true},
		{"PY", "Python", true},
		{" python3 ", "Python", true},
		{"ECMAScript", "JavaScript", true},
		{"k8s", "Kubernetes", true},
		{"ignored", "", false},
		{"rust", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			c, ok := d.Canonical(tt.alias)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestDictionary_CanonicalizeIsIdempotent(t *testing.T) {
	d := testDictionary()
	for _, e := range d.Entries() {
		assert.Equal(t, e.Canonical, d.Canonicalize(e.Canonical))
		for _, a := range e.Aliases {
			assert.Equal(t, e.Canonical, d.Canonicalize(d.Canonicalize(a)))
		}
	}
	assert.Equal(t, "Rust", d.Canonicalize("Rust"))
}

func TestDictionary_LaterRowWinsAliasConflict(t *testing.T) {
	d := NewDictionary([]Row{
		{Skill: "Go", Aliases: "golang"},
		{Skill: "Golang Tools", Aliases: "golang"},
	})

	c, ok := d.Canonical("golang")
	require.True(t, ok)
	assert.Equal(t, "Golang Tools", c)
}

func TestDictionary_CanonicalBeatsForeignAlias(t *testing.T) {
	d := NewDictionary([]Row{
		{Skill: "SQL"},
		{Skill: "PostgreSQL", Aliases: "postgres, sql"},
	})

	c, _ := d.Canonical("sql")
	assert.Equal(t, "SQL", c)
}

func TestDictionary_IsHard(t *testing.T) {
	d := testDictionary()
	assert.True(t, d.IsHard("Python"))
	assert.True(t, d.IsHard("Kubernetes"), "unknown types count as hard")
	assert.False(t, d.IsHard("Communication"))
	assert.True(t, d.IsHard("C++"), "skills missing from the dictionary count as hard")
}

func TestDictionary_NormalizesEntries(t *testing.T) {
	d := NewDictionary([]Row{{Skill: "Ｇｏ", Aliases: "ｇｏｌａｎｇ"}})

	c, ok := d.Canonical("golang")
	require.True(t, ok)
	assert.Equal(t, "Go", c)
}

func TestDictionary_EntriesAndCounts(t *testing.T) {
	d := testDictionary()
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 10, d.AliasCount())

	var names []string
	for _, e := range d.Entries() {
		names = append(names, e.Canonical)
	}
	assert.Equal(t, []string{"Python", "JavaScript", "Communication", "Kubernetes"}, names)

	e, ok := d.Entry("Python")
	require.True(t, ok)
	assert.Equal(t, []string{"Python", "py", "python3"}, e.Aliases)
}

func TestDictionary_MatcherFindsAliases(t *testing.T) {
	d := testDictionary()
	spans := d.Matcher().FindSpans("Strong communication skills and Python3 on k8s")
	assert.Equal(t, []string{"communication skills", "python3", "k8s"}, spanAliases(spans))
}
