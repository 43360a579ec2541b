package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Summarize creates a brief explanation of an analysis for reports and logs
func Summarize(a *types.Analysis) string {
	var parts []string

	switch {
	case a.MustTotal+a.NiceTotal == 0:
		return "No hard-skill requirements found"
	case a.CoveragePct >= 80:
		parts = append(parts, fmt.Sprintf("Strong coverage (%.1f%%)", a.CoveragePct))
	case a.CoveragePct >= 50:
		parts = append(parts, fmt.Sprintf("Moderate coverage (%.1f%%)", a.CoveragePct))
	default:
		parts = append(parts, fmt.Sprintf("Weak coverage (%.1f%%)", a.CoveragePct))
	}

	if a.MustTotal > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d must-have skills evidenced", a.MustFound, a.MustTotal))
	}
	if a.NiceTotal > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d nice-to-have skills evidenced", a.NiceFound, a.NiceTotal))
	}

	var missingMust []string
	for _, r := range a.Results {
		if !r.Found && r.Priority == types.PriorityMust {
			missingMust = append(missingMust, r.Term)
		}
	}
	if len(missingMust) > 0 {
		parts = append(parts, fmt.Sprintf("Missing must-haves (%s)", strings.Join(missingMust, ", ")))
	}

	return strings.Join(parts, ". ")
}
