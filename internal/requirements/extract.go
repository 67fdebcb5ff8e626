// Package requirements derives the skill list a job description asks
// for. Several passes contribute candidates: labeled requirement lines,
// the posting title, role phrases, a catalogue of common technologies
// and a per-line scan. Title-derived skills are inserted three times so
// they survive the final cap ahead of weaker candidates.
package requirements

import (
	"regexp"
	"strings"

	"cv-match/internal/skills"
)

var requirementLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:requis|required|demandé|nécessaire|maîtrise|mastery|compétences|skills|qualifications|technologies|maîtriser|connaître|connaissance)[\s:]+([^.\n]+)`),
	regexp.MustCompile(`(?i)(?:proficient|experienced|familiar|knowledgeable|expert)\s+(?:in|en|de|avec)\s+([^\n]+)`),
	regexp.MustCompile(`(?i)(?:doit|must|should|need|besoin)\s+(?:maîtriser|connaître|avoir|posséder)[\s:]+([^.\n]+)`),
}

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:full\s*stack|fullstack)\s*(?:developer|développeur|dev)`),
	regexp.MustCompile(`(?i)(?:front\s*end|frontend)\s*(?:developer|développeur|dev)`),
	regexp.MustCompile(`(?i)(?:back\s*end|backend)\s*(?:developer|développeur|dev)`),
	regexp.MustCompile(`(?i)(?:software|développeur|developer|engineer|ingénieur|architect|architecte)`),
	regexp.MustCompile(`(?i)(?:comptable|expert\s*comptable|accountant)`),
	regexp.MustCompile(`(?i)(?:marketing|digital\s*marketing|community\s*manager)`),
}

var commonTechSkills = []string{
	"javascript", "python", "java", "react", "node", "vue", "angular",
	"django", "flask", "sql", "mongodb", "postgresql", "mysql", "redis",
	"docker", "kubernetes", "aws", "azure", "git", "jenkins", "ci/cd",
	"rest", "graphql", "microservices", "agile", "scrum", "html", "css",
	"typescript", "php", "ruby", "go", "rust", "c++", "c#", ".net",
	"full stack", "frontend", "backend", "fullstack", "devops", "linux",
	"unix", "comptabilité", "sage", "ciel", "excel", "power bi", "tableau",
	"finance", "marketing", "seo", "sem", "google analytics",
	"facebook ads", "content marketing",
}

// roleSkillAssociations maps a posting-title keyword to the skills a role
// with that title implies.
var roleSkillAssociations = []struct {
	keyword string
	skills  []string
}{
	{"développeur", []string{"développement", "programmation", "coding", "code", "javascript", "python", "java"}},
	{"developer", []string{"développement", "programmation", "coding", "code", "javascript", "python", "java"}},
	{"dev", []string{"développement", "programmation", "coding", "code", "javascript", "python", "java"}},
	{"full stack", []string{"full stack", "fullstack", "frontend", "backend", "javascript", "react", "node", "html", "css", "api", "database"}},
	{"fullstack", []string{"full stack", "fullstack", "frontend", "backend", "javascript", "react", "node", "html", "css", "api", "database"}},
	{"frontend", []string{"frontend", "react", "vue", "angular", "javascript", "html", "css", "typescript"}},
	{"backend", []string{"backend", "node", "python", "java", "api", "database", "sql", "rest"}},
	{"comptable", []string{"comptabilité", "sage", "ciel", "excel", "fiscalité", "tva", "déclarations fiscales"}},
	{"accountant", []string{"comptabilité", "sage", "ciel", "excel", "fiscalité", "tva", "déclarations fiscales"}},
	{"marketing", []string{"marketing", "seo", "sem", "google analytics", "social media", "content marketing"}},
}

var titleCommonWords = map[string]struct{}{
	"poste": {}, "position": {}, "job": {}, "travail": {}, "work": {},
	"cherche": {}, "recherche": {}, "recherchons": {}, "nous": {},
	"vous": {}, "pour": {}, "avec": {}, "dans": {}, "sur": {},
	"description": {}, "du": {}, "de": {}, "la": {}, "le": {}, "les": {},
	"un": {}, "une": {}, "des": {},
}

var (
	shortWordRe = regexp.MustCompile(`\b\w{3,}\b`)
	titleWordRe = regexp.MustCompile(`\b\w{4,}\b`)
)

// Extract derives the required-skill list from a job description. The
// result is deduplicated case-insensitively keeping the first spelling
// seen, and capped at thirty entries.
func Extract(jobDescription string, cat *skills.Catalog) []string {
	if cat == nil {
		cat = skills.DefaultCatalog()
	}
	var required []string

	// Labeled requirement lines.
	for _, re := range requirementLinePatterns {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			required = append(required, skills.Extract(m[1], cat)...)
		}
	}

	jobLower := strings.ToLower(jobDescription)
	firstLine, _, _ := strings.Cut(jobDescription, "\n")
	firstLineLower := strings.ToLower(firstLine)

	// Short keywords from the posting title.
	for _, kw := range shortWordRe.FindAllString(firstLineLower, -1) {
		if len(kw) > 3 {
			required = append(required, capitalize(kw))
		}
	}

	// Role phrases anywhere in the posting.
	for _, re := range rolePatterns {
		for _, m := range re.FindAllString(jobDescription, -1) {
			required = append(required, strings.TrimSpace(m))
		}
	}

	// Common technology names mentioned in the text.
	for _, skill := range commonTechSkills {
		if strings.Contains(jobLower, skill) {
			required = append(required, formatSkill(skill))
		}
	}

	// Per-line scan picks up bulleted skill lists.
	for _, line := range strings.Split(jobDescription, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && len(line) < 100 {
			required = append(required, skills.Extract(line, cat)...)
		}
	}

	// Title-derived skills carry triple weight.
	if firstLine != "" && len(firstLine) < 200 {
		for _, assoc := range roleSkillAssociations {
			if !strings.Contains(firstLineLower, assoc.keyword) {
				continue
			}
			for _, skill := range assoc.skills {
				formatted := formatSkill(skill)
				if !containsFold(required, formatted) {
					required = append(required, formatted, formatted, formatted)
				}
			}
		}

		for _, word := range titleWordRe.FindAllString(firstLineLower, -1) {
			if _, common := titleCommonWords[word]; !common && len(word) > 3 {
				required = append(required, capitalize(word))
			}
		}

		titleSkills := skills.Extract(firstLine, cat)
		required = append(required, titleSkills...)
		required = append(required, titleSkills...)
		required = append(required, titleSkills...)
	}

	return skills.Dedup(required, 30)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatSkill title-cases single words and leaves phrases as written.
func formatSkill(skill string) string {
	if strings.Contains(skill, " ") {
		return skill
	}
	return capitalize(skill)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
