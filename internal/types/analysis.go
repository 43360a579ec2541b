package types

// MatchLocation records where a requirement was evidenced in a résumé
type MatchLocation struct {
	Bullets       []string `json:"bullets"`
	SkillsSection bool     `json:"skills_section"`
}

// MatchResult is the coverage outcome for a single requirement
type MatchResult struct {
	Term      string        `json:"term"`
	Priority  Priority      `json:"priority"`
	Found     bool          `json:"found"`
	Locations MatchLocation `json:"locations"`
}

// Analysis is the coverage report of a résumé against a job description.
// Must requirements count double in CoveragePct.
type Analysis struct {
	Results     []MatchResult `json:"results"`
	CoveragePct float64       `json:"coverage_pct"`
	MustFound   int           `json:"must_found"`
	MustTotal   int           `json:"must_total"`
	NiceFound   int           `json:"nice_found"`
	NiceTotal   int           `json:"nice_total"`
}

// Missing returns the terms of requirements that were not found
func (a *Analysis) Missing() []string {
	var out []string
	for _, r := range a.Results {
		if !r.Found {
			out = append(out, r.Term)
		}
	}
	return out
}
