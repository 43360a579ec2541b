// Package ranking scores how well a résumé's evidence covers the
// requirements of a job description.
package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights of found requirements in the coverage score
const (
	mustWeight = 2
	niceWeight = 1
)

// Options controls which résumé evidence counts toward coverage
type Options struct {
	// CountSkillsSection lets a listing in the skills pool satisfy a requirement
	CountSkillsSection bool
}

// DefaultOptions returns the options used when a caller does not specify any
func DefaultOptions() Options {
	return Options{CountSkillsSection: true}
}

type normalizedBullet struct {
	id   string
	text string
}

// Score matches every requirement of jd against the résumé bullets and,
// optionally, its skills pool. A requirement is found when its term occurs
// as a whole token in a bullet, or equals a pool entry ignoring case.
func Score(jd *types.ParsedJD, resume *types.ResumeDocument, opts Options) *types.Analysis {
	var bullets []normalizedBullet
	for _, b := range resume.AllBullets() {
		bullets = append(bullets, normalizedBullet{id: b.ID, text: ingestion.Normalize(b.Text)})
	}

	pool := make(map[string]bool, len(resume.Skills))
	for _, s := range resume.Skills {
		pool[strings.ToLower(s)] = true
	}

	analysis := &types.Analysis{Results: make([]types.MatchResult, 0, len(jd.Requirements))}
	for _, req := range jd.Requirements {
		matcher := skills.NewTermMatcher(req.Skill)

		hits := make([]string, 0)
		for _, b := range bullets {
			if matcher.Match(b.text) {
				hits = append(hits, b.id)
			}
		}
		inSkills := opts.CountSkillsSection && pool[strings.ToLower(req.Skill)]
		found := len(hits) > 0 || inSkills

		switch req.Priority {
		case types.PriorityMust:
			analysis.MustTotal++
			if found {
				analysis.MustFound++
			}
		default:
			analysis.NiceTotal++
			if found {
				analysis.NiceFound++
			}
		}

		analysis.Results = append(analysis.Results, types.MatchResult{
			Term:     req.Skill,
			Priority: req.Priority,
			Found:    found,
			Locations: types.MatchLocation{
				Bullets:       hits,
				SkillsSection: inSkills,
			},
		})
	}

	analysis.CoveragePct = coveragePct(analysis)
	return analysis
}

// coveragePct is 100 * got / max rounded to one decimal, or 0 when the job
// description has no requirements
func coveragePct(a *types.Analysis) float64 {
	maxScore := mustWeight*a.MustTotal + niceWeight*a.NiceTotal
	if maxScore == 0 {
		return 0
	}
	got := mustWeight*a.MustFound + niceWeight*a.NiceFound
	return roundTo(100*float64(got)/float64(maxScore), 1)
}

// roundTo rounds half away from zero at the given number of decimals
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
