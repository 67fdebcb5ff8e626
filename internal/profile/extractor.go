package profile

import (
	"strings"

	"cv-match/internal/skills"
	"cv-match/internal/textnorm"
)

// Extract runs every sub-extractor over a normalized résumé text and
// assembles the candidate profile. Sub-extractors are independent; a
// panic in one leaves its facet at the zero value and the rest of the
// profile intact.
func Extract(text string, cat *skills.Catalog) *Profile {
	if cat == nil {
		cat = skills.DefaultCatalog()
	}
	normalized := textnorm.Normalize(text)
	lines := textnorm.Lines(normalized)
	lower := strings.ToLower(normalized)

	p := &Profile{}

	guard(func() { p.Identity = ExtractIdentity(normalized, lines) })
	guard(func() { p.Summary = ExtractSummary(normalized, lines) })
	guard(func() { p.TechnicalSkills = groupSkills(normalized, cat) })
	guard(func() { p.Experiences = ExtractExperiences(normalized, lines, cat) })
	guard(func() { p.Internships = ExtractInternships(lines) })
	guard(func() { p.Projects = ExtractProjects(lines) })
	guard(func() { p.Education = ExtractEducation(lines) })
	guard(func() { p.Certifications = ExtractCertifications(lines) })
	guard(func() { p.Languages = ExtractLanguages(normalized, lines) })
	guard(func() { p.SoftSkills = ExtractSoftSkills(lower) })

	return p
}

func guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func groupSkills(text string, cat *skills.Catalog) TechnicalSkills {
	grouped := skills.ClassifyAll(text, cat)
	return TechnicalSkills{
		Languages:  grouped[skills.CategoryLanguages],
		Frameworks: grouped[skills.CategoryFrameworks],
		Tools:      grouped[skills.CategoryTools],
		Cloud:      grouped[skills.CategoryCloud],
		AIData:     grouped[skills.CategoryAIData],
		Security:   grouped[skills.CategorySecurity],
	}
}
