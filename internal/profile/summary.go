package profile

import "strings"

var summaryHeaderKeywords = []string{
	"résumé", "resume", "profil", "profile", "summary", "about", "à propos",
}

const (
	SeniorityJunior    = "Junior"
	SeniorityConfirmed = "Confirmed"
	SenioritySenior    = "Senior"
)

var seniorityBuckets = []struct {
	level    string
	keywords []string
}{
	{SeniorityJunior, []string{"junior", "débutant", "beginner", "entry level", "stagiaire"}},
	{SeniorityConfirmed, []string{"confirmé", "intermediate", "expérimenté", "experienced"}},
	{SenioritySenior, []string{"senior", "expert", "lead", "principal", "architect"}},
}

// domainTaxonomy ordering decides ties: equal scores resolve to the
// earlier entry.
var domainTaxonomy = []struct {
	name     string
	keywords []string
}{
	{"Web Development", []string{"web", "frontend", "backend", "fullstack", "développeur web", "web developer"}},
	{"Mobile", []string{"mobile", "android", "ios", "react native", "flutter", "développeur mobile"}},
	{"Data Science", []string{"data science", "data scientist", "machine learning", "deep learning", "analytics avancé"}},
	{"Cybersecurity", []string{"security", "cyber", "pentest", "sécurité", "cybersécurité", "cybersecurity"}},
	{"DevOps", []string{"devops", "cloud", "docker", "kubernetes", "ci/cd", "infrastructure"}},
	{"Digital Marketing", []string{"marketing digital", "digital marketing", "community manager", "social media", "seo", "sem", "content marketing", "email marketing", "réseaux sociaux"}},
	{"Finance & Accounting", []string{"comptable", "comptabilité", "finance", "expert-comptable", "audit", "fiscalité", "gestion financière", "analyse financière", "sage", "ciel"}},
	{"Human Resources", []string{"rh", "ressources humaines", "recrutement", "gestion du personnel", "hr"}},
	{"Sales & Commerce", []string{"commercial", "vente", "business development", "account manager", "sales"}},
	{"Design & Creative", []string{"designer", "design", "graphiste", "création", "ui/ux", "illustration"}},
}

// ExtractSummary captures the text under a labeled summary header and
// infers seniority and primary domain from keyword hits over the whole
// document.
func ExtractSummary(text string, lines []string) Summary {
	s := Summary{}

	var section []string
	inSummary := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, summaryHeaderKeywords) {
			inSummary = true
			continue
		}
		if !inSummary {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) > 10 {
			section = append(section, trimmed)
		} else if len(section) > 0 {
			break
		}
	}
	if len(section) > 0 {
		s.Text = strings.Join(section[:min(len(section), 4)], " ")
	}

	lowerText := strings.ToLower(text)
	for _, bucket := range seniorityBuckets {
		if containsAny(lowerText, bucket.keywords) {
			s.Seniority = bucket.level
			break
		}
	}

	bestScore := 0
	for _, d := range domainTaxonomy {
		score := 0
		for _, kw := range d.keywords {
			if strings.Contains(lowerText, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			s.Domain = d.name
		}
	}

	return s
}
