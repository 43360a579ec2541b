package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

const maxEducation = 10

var educationGlyphs = regexp.MustCompile(`^[•●◦▪‣·*\-–—]+\s*`)

// Result is what a Walker produces once all lines have been stepped
type Result struct {
	Experience []types.ExperienceEntry
	Projects   []types.ProjectEntry
	Skills     []string
	Education  []string
}

// Walker is the résumé state machine. It is fed one trimmed line at a time
// through Step and holds at most one open experience entry and one open
// project. Flush commits whatever is still open.
type Walker struct {
	dict     *skills.Dictionary
	analyzer nlp.Analyzer
	newID    IDFunc

	section    section
	experience *types.ExperienceEntry
	project    *types.ProjectEntry

	experiences []types.ExperienceEntry
	projects    []types.ProjectEntry
	pool        []string
	education   []string
}

// NewWalker creates a Walker in the initial state, before any heading
func NewWalker(dict *skills.Dictionary, analyzer nlp.Analyzer, newID IDFunc) *Walker {
	if newID == nil {
		newID = DefaultIDFunc
	}
	return &Walker{
		dict:        dict,
		analyzer:    analyzer,
		newID:       newID,
		experiences: make([]types.ExperienceEntry, 0),
		projects:    make([]types.ProjectEntry, 0),
		education:   make([]string, 0),
	}
}

// Step advances the walker by one line
func (w *Walker) Step(line string) {
	line = strings.TrimSpace(line)
	if line == "" || isContactLine(line) {
		return
	}

	if sec, ok := detectHeading(line); ok {
		w.enter(sec)
		return
	}

	if w.section == sectionNone {
		// a job header before any heading starts the experience section
		if _, ok := jobHeaderParts(line); !ok {
			return
		}
		w.section = sectionExperience
	}

	switch w.section {
	case sectionExperience:
		w.stepExperience(line)
	case sectionProjects:
		w.stepProjects(line)
	case sectionSkills:
		w.pool = append(w.pool, splitSkillsLine(line)...)
	case sectionEducation:
		text := educationGlyphs.ReplaceAllString(ingestion.StripBullet(line), "")
		if text = strings.TrimSpace(text); text != "" {
			w.education = append(w.education, text)
		}
	}
}

// enter switches sections, committing open entries that belong to the
// section being left
func (w *Walker) enter(sec section) {
	if sec != sectionExperience {
		w.commitExperience()
	}
	if sec != sectionProjects {
		w.commitProject()
	}
	w.section = sec
}

func (w *Walker) stepExperience(line string) {
	if dates, ok := parsePureDateLine(line); ok && w.experience != nil {
		if w.experience.Start == nil {
			w.experience.Start = types.StringPtr(dates.Start)
		}
		if w.experience.End == nil {
			w.experience.End = types.StringPtr(dates.End)
		}
		return
	}

	if parts, ok := jobHeaderParts(line); ok {
		w.commitExperience()
		company, title := guessCompanyTitle(parts[0], parts[1])
		entry := newExperienceEntry()
		entry.Company = types.StringPtr(company)
		entry.Title = types.StringPtr(title)
		if len(parts) == 3 {
			if dates, ok := ParseDateRange(parts[2]); ok {
				entry.Start = types.StringPtr(dates.Start)
				entry.End = types.StringPtr(dates.End)
			}
		}
		w.experience = entry
		return
	}

	if w.experience != nil {
		if hits := w.stackSkills(line); len(hits) >= 2 {
			w.experience.Stack = appendUnique(w.experience.Stack, hits...)
			w.pool = append(w.pool, hits...)
			return
		}
	}

	isBullet := ingestion.IsBullet(line)
	if !isBullet && !w.analyzer.LeadingTokenIsVerb(line) {
		return
	}
	text := line
	if isBullet {
		text = ingestion.StripBullet(line)
	}
	if w.experience == nil {
		w.experience = newExperienceEntry()
	}
	w.experience.Bullets = append(w.experience.Bullets, w.newBullet(text))
}

func (w *Walker) stepProjects(line string) {
	if ingestion.IsBullet(line) {
		p := w.openProject()
		p.Bullets = append(p.Bullets, w.newBullet(ingestion.StripBullet(line)))
		return
	}

	if hits := w.stackSkills(line); len(hits) >= 2 {
		p := w.openProject()
		p.Stack = appendUnique(p.Stack, hits...)
		w.pool = append(w.pool, hits...)
		return
	}

	if looksLikeProjectHeader(line) {
		w.commitProject()
		p := newProjectEntry()
		p.Name = types.StringPtr(line)
		w.project = p
		return
	}

	if w.analyzer.LeadingTokenIsVerb(line) {
		p := w.openProject()
		p.Bullets = append(p.Bullets, w.newBullet(line))
	}
}

// Flush commits open entries and returns the accumulated result. The skill
// pool is canonicalized and deduplicated in first-seen order; education is
// capped at ten lines.
func (w *Walker) Flush() Result {
	w.commitExperience()
	w.commitProject()

	pool := make([]string, 0, len(w.pool))
	for _, s := range w.pool {
		pool = appendUnique(pool, w.dict.Canonicalize(s))
	}

	education := w.education
	if len(education) > maxEducation {
		education = education[:maxEducation]
	}

	return Result{
		Experience: w.experiences,
		Projects:   w.projects,
		Skills:     pool,
		Education:  education,
	}
}

func (w *Walker) commitExperience() {
	if w.experience != nil {
		w.experiences = append(w.experiences, *w.experience)
		w.experience = nil
	}
}

func (w *Walker) commitProject() {
	if w.project != nil {
		w.projects = append(w.projects, *w.project)
		w.project = nil
	}
}

// openProject returns the open project, opening an unnamed one if needed
func (w *Walker) openProject() *types.ProjectEntry {
	if w.project == nil {
		w.project = newProjectEntry()
	}
	return w.project
}

func (w *Walker) newBullet(text string) types.Bullet {
	return types.Bullet{
		ID:     w.newID(),
		Text:   text,
		Skills: w.tagSkills(text),
	}
}

// tagSkills returns the canonical skills mentioned in text, deduplicated
func (w *Walker) tagSkills(text string) []string {
	out := make([]string, 0)
	for _, span := range w.analyzer.FindAliasSpans(text) {
		if c, ok := w.dict.Canonical(span.Alias); ok {
			out = appendUnique(out, c)
		}
	}
	return out
}

// stackSkills splits a list-like line and returns the distinct canonical
// skills among its pieces. Pieces must be whole aliases.
func (w *Walker) stackSkills(line string) []string {
	var hits []string
	for _, piece := range splitSkillsLine(line) {
		if c, ok := w.dict.Canonical(piece); ok {
			hits = appendUnique(hits, c)
		}
	}
	return hits
}

func newExperienceEntry() *types.ExperienceEntry {
	return &types.ExperienceEntry{
		Stack:   make([]string, 0),
		Bullets: make([]types.Bullet, 0),
	}
}

func newProjectEntry() *types.ProjectEntry {
	return &types.ProjectEntry{
		Stack:   make([]string, 0),
		Bullets: make([]types.Bullet, 0),
	}
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		if item == "" {
			continue
		}
		dup := false
		for _, existing := range list {
			if existing == item {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, item)
		}
	}
	return list
}
