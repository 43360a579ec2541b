// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority marks how strongly a job description asks for a skill
type Priority string

const (
	// PriorityMust is a required skill
	PriorityMust Priority = "must"
	// PriorityNice is a preferred or bonus skill
	PriorityNice Priority = "nice"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p == PriorityMust || p == PriorityNice
}

// MergePriority combines two observations of the same skill. Must always wins,
// so repeated merges can only escalate a requirement, never downgrade it.
func MergePriority(a, b Priority) Priority {
	if a == PriorityMust || b == PriorityMust {
		return PriorityMust
	}
	return PriorityNice
}

// Requirement is a canonical skill requested by a job description
type Requirement struct {
	Skill    string   `json:"skill" validate:"required"`
	Priority Priority `json:"priority" validate:"required,oneof=must nice"`
}

// ParsedJD is the structured result of parsing a job description.
// Requirements are sorted by skill and hold hard skills only.
type ParsedJD struct {
	Title            *string       `json:"title"`
	Company          *string       `json:"company"`
	Seniority        *string       `json:"seniority"`
	Requirements     []Requirement `json:"requirements" validate:"dive"`
	Responsibilities []string      `json:"responsibilities"`
}

// StringPtr returns a pointer to s, or nil when s is empty
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the value behind p, or "" for nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
