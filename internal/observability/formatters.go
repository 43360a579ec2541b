// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to max runes, marking the cut with "..."
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// writeList writes up to maxItemsToShow items with a "more" marker
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func orNone(s *string) string {
	if s == nil || *s == "" {
		return "(none)"
	}
	return *s
}

// PrintParsedJD outputs a human-readable summary of a parsed job description.
func (p *Printer) PrintParsedJD(jd *types.ParsedJD) {
	if jd == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", orNone(jd.Title)))
	sb.WriteString(fmt.Sprintf("Company:   %s\n", orNone(jd.Company)))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", orNone(jd.Seniority)))
	sb.WriteString("\n")

	var must, nice []string
	for _, r := range jd.Requirements {
		if r.Priority == types.PriorityMust {
			must = append(must, r.Skill)
		} else {
			nice = append(nice, r.Skill)
		}
	}
	writeList(&sb, "Must Have", must)
	writeList(&sb, "Nice To Have", nice)
	writeList(&sb, "Responsibilities", jd.Responsibilities)

	p.printBox("PARSED JOB DESCRIPTION", sb.String())
}

// PrintResume outputs a human-readable summary of a parsed résumé.
func (p *Printer) PrintResume(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:  %s\n", orNone(doc.Basics.Name)))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orNone(doc.Basics.Email)))
	sb.WriteString("\n")

	var jobs []string
	for _, e := range doc.Experience {
		line := fmt.Sprintf("%s @ %s", orNone(e.Title), orNone(e.Company))
		if e.Start != nil || e.End != nil {
			line += fmt.Sprintf(" (%s - %s)", types.Deref(e.Start), types.Deref(e.End))
		}
		jobs = append(jobs, fmt.Sprintf("%s [%d bullets]", line, len(e.Bullets)))
	}
	writeList(&sb, "Experience", jobs)

	var projects []string
	for _, pr := range doc.Projects {
		projects = append(projects, fmt.Sprintf("%s [%d bullets]", orNone(pr.Name), len(pr.Bullets)))
	}
	writeList(&sb, "Projects", projects)
	writeList(&sb, "Skills", doc.Skills)

	sb.WriteString(fmt.Sprintf("Education entries: %d\n", len(doc.Education)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintAnalysis outputs the coverage score and per-requirement results.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage:     %.1f%%\n", a.CoveragePct))
	sb.WriteString(fmt.Sprintf("Must Found:   %d/%d\n", a.MustFound, a.MustTotal))
	sb.WriteString(fmt.Sprintf("Nice Found:   %d/%d\n", a.NiceFound, a.NiceTotal))
	sb.WriteString("\n")

	for _, r := range a.Results {
		mark := "✗"
		if r.Found {
			mark = "✓"
		}
		where := ""
		if len(r.Locations.Bullets) > 0 {
			where = " " + strings.Join(r.Locations.Bullets, ",")
		}
		if r.Locations.SkillsSection {
			where += " [skills]"
		}
		sb.WriteString(fmt.Sprintf("  %s %-20s %-4s%s\n", mark, r.Term, r.Priority, where))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.ReplaceAll(ranking.Summarize(a), ". ", "\n"))

	p.printBox("COVERAGE ANALYSIS", sb.String())
}
