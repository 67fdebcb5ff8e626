package skills

import "regexp"

// Catalog bundles the fixed reference lists the extractor and classifier
// work from. Callers normally use DefaultCatalog; tests may shrink it.
type Catalog struct {
	// AcronymStoplist holds generic 2-5 letter acronyms that are not skills.
	AcronymStoplist map[string]struct{}
	// CommonUppercase holds common words that appear fully uppercased.
	CommonUppercase map[string]struct{}
	// TechPhrases is the fixed catalogue of multi-word technical phrases.
	TechPhrases []string
	// CommonWords are filler tokens rejected by the section-line scan.
	CommonWords map[string]struct{}
	// NonSkills are tokens dropped before classification: accounting/legal
	// acronyms, bare years, place names.
	NonSkills map[string]struct{}
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		AcronymStoplist: toSet(
			"CV", "PDF", "API", "URL", "HTTP", "HTTPS", "HTML", "CSS", "JS", "ID", "UI", "UX",
		),
		CommonUppercase: toSet(
			"THE", "AND", "FOR", "ARE", "ALL", "YOU", "CAN",
		),
		TechPhrases: []string{
			"machine learning",
			"data science",
			"deep learning",
			"artificial intelligence",
			"web development",
			"full stack",
			"front end",
			"back end",
			"cloud computing",
			"devops",
			"ci/cd",
			"rest api",
			"graphql",
		},
		CommonWords: toSet(
			"and", "or", "the", "with", "in", "for", "to", "of", "a", "an",
		),
		NonSkills: toSet(
			"pme", "ifrs", "dec", "tva", "cvae", "pcg", "formation", "professionnelle",
			"techniques", "certifications", "langues", "comptables", "comptable", "expert",
			"ordre", "experts", "université", "école", "master", "licence", "diplôme",
			"communication", "marketing", "digital", "finance", "gestion", "présent",
			"present", "lyon", "bordeaux", "paris", "france",
		),
	}
}

var (
	acronymRe      = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	dottedTechRe   = regexp.MustCompile(`\b[A-Z][a-z]+\.(?:js|ts|py|net|jsx|tsx)\b`)
	longUppercase  = regexp.MustCompile(`\b[A-Z]{3,}[A-Za-z]*\b`)
	sectionLineRe  = regexp.MustCompile(`(?i)(?:skills|compétences|technologies|tools|outils)[\s:]+([^\n]+)`)
	abilityLineRe  = regexp.MustCompile(`(?i)(?:proficient|experienced|familiar|knowledgeable)\s+in\s+([^\n]+)`)
	masteryLineRe  = regexp.MustCompile(`(?i)(?:expertise|maîtrise|connaissance)[\s:]+([^\n]+)`)
	skillDelimiter = regexp.MustCompile(`[,;•\-\n]`)
	bareYearRe     = regexp.MustCompile(`^\d{4}$`)
)

func toSet(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}
