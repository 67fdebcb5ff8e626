package profile

import "strings"

// Profile is the structured representation of a résumé's contents. Every
// field tolerates absence: a sparse résumé yields a sparse profile, never
// an error.
type Profile struct {
	Identity        Identity        `json:"identity"`
	Summary         Summary         `json:"summary"`
	TechnicalSkills TechnicalSkills `json:"technical_skills"`
	Experiences     []Experience    `json:"experiences"`
	Internships     []Experience    `json:"internships"`
	Projects        []Project       `json:"projects"`
	Education       []Education     `json:"education"`
	Certifications  []Certification `json:"certifications"`
	Languages       []Language      `json:"languages"`
	SoftSkills      []string        `json:"soft_skills"`
	// MatchScore is nil until a job description has been scored against
	// this profile.
	MatchScore *float64 `json:"match_score"`
}

type Identity struct {
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	City    string   `json:"city,omitempty"`
	Country string   `json:"country,omitempty"`
	Links   []string `json:"links,omitempty"`
	Title   string   `json:"title,omitempty"`
}

type Summary struct {
	Text      string `json:"text,omitempty"`
	Seniority string `json:"seniority,omitempty"`
	Domain    string `json:"domain,omitempty"`
}

// TechnicalSkills buckets flat skills into the six fixed categories.
type TechnicalSkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Cloud      []string `json:"cloud"`
	AIData     []string `json:"ai_data"`
	Security   []string `json:"securite"`
}

// All returns the bucketed skills flattened in bucket order.
func (t TechnicalSkills) All() []string {
	out := make([]string, 0,
		len(t.Languages)+len(t.Frameworks)+len(t.Tools)+len(t.Cloud)+len(t.AIData)+len(t.Security))
	out = append(out, t.Languages...)
	out = append(out, t.Frameworks...)
	out = append(out, t.Tools...)
	out = append(out, t.Cloud...)
	out = append(out, t.AIData...)
	out = append(out, t.Security...)
	return out
}

type Experience struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Period       string   `json:"period,omitempty"`
	Duties       []string `json:"duties,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Text renders the experience as a single span for similarity scoring.
func (e Experience) Text() string {
	parts := make([]string, 0, 2+len(e.Duties))
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Company != "" {
		parts = append(parts, e.Company)
	}
	parts = append(parts, e.Duties...)
	return strings.Join(parts, " ")
}

// Format renders the experience for caller-facing result lists.
func (e Experience) Format() string {
	parts := make([]string, 0, 4)
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Company != "" {
		parts = append(parts, "at "+e.Company)
	}
	if e.Period != "" {
		parts = append(parts, "("+e.Period+")")
	}
	if len(e.Duties) > 0 {
		duties := e.Duties
		if len(duties) > 2 {
			duties = duties[:2]
		}
		parts = append(parts, "- "+strings.Join(duties, " | "))
	}
	return strings.Join(parts, " ")
}

type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

func (p Project) Text() string {
	parts := make([]string, 0, 3)
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	parts = append(parts, p.Technologies...)
	return strings.Join(parts, " ")
}

type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Years       string `json:"years,omitempty"`
}

func (e Education) Text() string {
	return strings.TrimSpace(e.Degree + " " + e.Institution)
}

type Certification struct {
	Name string `json:"name,omitempty"`
	Org  string `json:"org,omitempty"`
	Year string `json:"year,omitempty"`
}

func (c Certification) Text() string {
	return strings.TrimSpace(c.Name + " " + c.Org)
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// LevelUnspecified is the default proficiency when none is detected.
const LevelUnspecified = "unspecified"
