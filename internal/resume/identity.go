package resume

import (
	"regexp"
	"strings"
)

const nameLineWindow = 12

var (
	nameCandidate = regexp.MustCompile(`^([A-Z][a-z]+(?:[-\s][A-Z][a-z]+){1,3}|[A-Z]+(?:[-\s][A-Z]+){1,3})$`)
	nameSeparator = regexp.MustCompile(`[|•●▪‣·]+`)
	wideSpace     = regexp.MustCompile(`\s{2,}`)

	linkedInHost  = regexp.MustCompile(`(?i)(https?://)?(?:www\.)?linkedin\.com(/[^\s)]*)?`)
	linkedInLabel = regexp.MustCompile(`(?i)linkedin\s*:?\s*(/in/[A-Za-z0-9\-_/]+)`)
)

const linkedInBase = "https://www.linkedin.com"

// extractName returns the first 2-4 word Title Case or ALL CAPS fragment in
// the leading non-empty lines. Fragments are separated by bullet glyphs, pipes
// or runs of two or more spaces.
func extractName(lines []string) string {
	checked := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		checked++
		if checked > nameLineWindow {
			break
		}

		var parts []string
		for _, piece := range nameSeparator.Split(line, -1) {
			parts = append(parts, nonEmptyParts(wideSpace.Split(piece, -1))...)
		}
		if len(parts) == 0 {
			parts = []string{line}
		}

		for _, cand := range parts {
			low := strings.ToLower(cand)
			if strings.Contains(low, "http") || strings.Contains(low, "linkedin") ||
				strings.Contains(low, "github") || strings.Contains(low, "@") {
				continue
			}
			if strings.Contains(cand, ",") {
				continue
			}
			if n := len(strings.Fields(cand)); n < 2 || n > 4 {
				continue
			}
			if nameCandidate.MatchString(cand) {
				return cand
			}
		}
	}
	return ""
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractLinks collects literal URLs, then LinkedIn mentions without a scheme
// rewritten to https://www.linkedin.com/..., deduplicated in first-seen order.
func extractLinks(text string) []string {
	links := make([]string, 0)
	seen := make(map[string]bool)
	add := func(link string) {
		link = strings.TrimRight(link, ".,;:")
		if link == "" || seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	}

	for _, u := range urlPattern.FindAllString(text, -1) {
		add(u)
	}
	for _, m := range linkedInHost.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			continue
		}
		add(linkedInBase + m[2])
	}
	for _, m := range linkedInLabel.FindAllStringSubmatch(text, -1) {
		add(linkedInBase + m[1])
	}
	return links
}
