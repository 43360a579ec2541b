package types

// PresentDate is the end date of an ongoing role
const PresentDate = "PRESENT"

// Bullet is a single achievement line attributed to an experience or project
type Bullet struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

// Basics holds the candidate's identity fields
type Basics struct {
	Name  *string  `json:"name"`
	Email *string  `json:"email"`
	Links []string `json:"links"`
}

// ExperienceEntry is one job in the work history.
// Start and End are "YYYY-MM", End may also be PresentDate.
type ExperienceEntry struct {
	Company *string  `json:"company"`
	Title   *string  `json:"title"`
	Start   *string  `json:"start"`
	End     *string  `json:"end"`
	Stack   []string `json:"stack"`
	Bullets []Bullet `json:"bullets"`
}

// ProjectEntry is one personal or professional project
type ProjectEntry struct {
	Name    *string  `json:"name"`
	Stack   []string `json:"stack"`
	Bullets []Bullet `json:"bullets"`
}

// ResumeDocument is the structured result of parsing a résumé
type ResumeDocument struct {
	Basics     Basics            `json:"basics"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     []string          `json:"skills"`
	Education  []string          `json:"education"`
}

// AllBullets flattens experience bullets followed by project bullets, in document order
func (r *ResumeDocument) AllBullets() []Bullet {
	var out []Bullet
	for _, e := range r.Experience {
		out = append(out, e.Bullets...)
	}
	for _, p := range r.Projects {
		out = append(out, p.Bullets...)
	}
	return out
}
