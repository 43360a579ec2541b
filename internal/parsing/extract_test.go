package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"explicit title line", "Title: senior data engineer\nAbout us", "Senior Data Engineer"},
		{"role line keeps symbols", "Role: c++ developer", "c++ Developer"},
		{"hiring cue", "We are hiring a Staff Platform Engineer.", "Staff Platform Engineer"},
		{"seeking cue", "Globex is seeking an ML Scientist to", "Ml Scientist"},
		{"join cue", "Join our team as a Frontend Developer today", "Frontend Developer"},
		{"fallback role", "we need a full stack developer asap", "Full Stack Developer"},
		{"none", "Great benefits and a friendly office", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(tt.text, "\n")
			assert.Equal(t, tt.expected, extractTitle(tt.text, lines))
		})
	}
}

func TestExtractTitle_OnlyLeadingLinesForExplicitTitle(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 11; i++ {
		lines = append(lines, "filler")
	}
	lines = append(lines, "Title: Data Engineer")
	text := strings.Join(lines, "\n")

	assert.Equal(t, "", extractTitle(text, lines))
}

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"company line", []string{"Engineer wanted", "Company: Umbrella Inc."}, "Umbrella Inc"},
		{"at line", []string{"At Globex Corporation, we build tools"}, "Globex Corporation"},
		{"at ignores lower-case words", []string{"At least 3 years of Go", "Engineering"}, ""},
		{"why line", []string{"Why Initech?"}, "Initech"},
		{"title-cased first line", []string{"Acme Robotics", "We build robots"}, "Acme Robotics"},
		{"first line too long", []string{"The Very Big Robot Company", "We build robots"}, ""},
		{"first line not title-cased", []string{"we build robots"}, ""},
		{"first line is a heading", []string{"Requirements", "- Go"}, ""},
		{"first line is a heading with colon", []string{"Qualifications:", "- Go"}, ""},
		{"first line is an ignored heading", []string{"About The Team", "We ship"}, ""},
		{"first line is an inline heading", []string{"Requirements: Python", "- Go"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCompany(tt.lines))
		})
	}
}

func TestExtractSeniority(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Jr. Developer", "junior"},
		{"Entry-level role", "junior"},
		{"intermediate backend engineer", "mid"},
		{"Mid-level engineer", "mid"},
		{"Sr Engineer", "senior"},
		{"Staff engineer", "staff"},
		{"Lead the migration", "lead"},
		{"Principal architect", "principal"},
		{"Software engineer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSeniority(tt.text))
		})
	}
}
