package profile

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	namePartRe  = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)
	digitRunRe  = regexp.MustCompile(`\+?\d{8,}`)
	linkedinRe  = regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/([a-zA-Z0-9-]+)`)
	githubRe    = regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`)
	dateShapeRe = regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}`)
	yearDashRe  = regexp.MustCompile(`\d{4}\s*[-–—]`)
)

// phonePatterns are tried in order; regional formats first, generic runs
// last.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+212[.\s-]?\d{9}`),
	regexp.MustCompile(`212\d{9}`),
	regexp.MustCompile(`(\+33|0)[1-9](?:[.\s-]?\d{2}){4}`),
	regexp.MustCompile(`(\+1)?[\s.-]?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
	regexp.MustCompile(`\d{2}[\s.-]?\d{2}[\s.-]?\d{2}[\s.-]?\d{2}[\s.-]?\d{2}`),
	regexp.MustCompile(`\+?\d{10,12}`),
}

var sectionKeywords = []string{
	"expérience", "experience", "formation", "education", "compétences",
	"skills", "projets", "projects", "certifications", "langues", "languages",
}

var educationVocabulary = []string{
	"licence", "master", "université", "école", "diplôme", "maîtrise",
	"normes", "comptables", "ifrs", "spécialisé", "accompagnement",
	"préparation", "dossiers", "fiscaux",
}

var nameCommonWords = map[string]struct{}{
	"the": {}, "and": {}, "resume": {}, "curriculum": {}, "vitae": {},
	"maîtrise": {}, "des": {}, "normes": {}, "comptables": {}, "ifrs": {},
	"les": {}, "une": {}, "pour": {}, "avec": {}, "dans": {}, "sur": {},
	"par": {}, "aux": {},
}

var titleKeywords = []string{
	"developer", "engineer", "analyst", "manager", "consultant", "specialist",
	"expert", "développeur", "ingénieur", "analyste", "spécialiste",
	"comptable", "marketing", "digital", "finance", "commercial", "designer",
	"architect", "student", "étudiant", "intern", "stagiaire", "responsable",
	"directeur", "chef", "senior", "junior", "lead", "chief",
}

var titleExcludeWords = []string{
	"formation", "education", "expérience", "experience", "compétences",
	"skills", "langues", "languages", "projets", "projects", "certifications",
	"licence", "master", "université", "école", "diplôme", "diploma",
	"maîtrise", "normes", "comptables", "ifrs", "accompagnement",
	"préparation", "dossiers", "fiscaux", "spécialisé",
}

// ExtractIdentity mines name, contact details, location, links and a short
// professional title from the résumé header region. Every field is
// optional; lines that look like sections, URLs or credentials are never
// mistaken for a name.
func ExtractIdentity(text string, lines []string) Identity {
	id := Identity{}

	if m := emailRe.FindString(text); m != "" {
		id.Email = m
	}

	id.Name = extractName(lines)
	id.Phone = extractPhone(lines)
	id.Links = extractLinks(text)
	id.City, id.Country = extractLocation(text)
	id.Title = extractTitle(lines)

	return id
}

func extractName(lines []string) string {
	limit := min(len(lines), 10)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 80 {
			continue
		}
		if strings.Contains(line, "@") || digitRunRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, sectionKeywords) || containsAny(lower, educationVocabulary) {
			continue
		}
		if strings.Contains(lower, "http") || strings.Contains(lower, "www.") ||
			strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}

		m := namePartRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parts := make([]string, 0, 4)
		for _, p := range strings.Fields(m[1]) {
			if len(p) <= 2 {
				continue
			}
			if _, common := nameCommonWords[strings.ToLower(p)]; common {
				continue
			}
			parts = append(parts, p)
		}
		if len(parts) >= 2 && len(parts) <= 4 {
			return strings.Join(parts, " ")
		}
		if len(parts) == 1 && len(parts[0]) > 3 {
			return parts[0]
		}
	}
	return ""
}

func extractPhone(lines []string) string {
	limit := min(len(lines), 15)
	head := strings.Join(lines[:limit], "\n")
	for _, re := range phonePatterns {
		m := strings.TrimSpace(re.FindString(head))
		if m == "" {
			continue
		}
		if len(m) < 8 || len(m) > 15 {
			continue
		}
		if regexp.MustCompile(`^\d{4}$`).MatchString(m) || dateShapeRe.MatchString(m) {
			continue
		}
		return m
	}
	return ""
}

func extractLinks(text string) []string {
	links := make([]string, 0, 2)
	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		links = append(links, "linkedin.com/in/"+m[1])
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		links = append(links, "github.com/"+m[1])
	}
	return links
}

func extractTitle(lines []string) string {
	limit := min(len(lines), 12)
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) > 50 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, titleExcludeWords) {
			continue
		}
		if strings.Contains(line, "@") || digitRunRe.MatchString(line) || yearDashRe.MatchString(line) {
			continue
		}
		if !containsAny(lower, titleKeywords) {
			continue
		}
		if len(strings.Fields(line)) <= 6 {
			return line
		}
	}
	return ""
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
