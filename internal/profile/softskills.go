package profile

import "strings"

var softSkillVocabulary = []string{
	"leadership", "teamwork", "communication", "gestion", "management",
	"autonome", "autonomous", "créatif", "creative", "analytique",
	"proactif", "proactive", "rigoureux", "rigorous", "adaptable",
	"résolution de problèmes", "problem solving", "organisation",
	"travail en équipe", "collaboration", "motivation", "curiosité",
}

// ExtractSoftSkills matches a fixed vocabulary against the document, ten
// hits at most.
func ExtractSoftSkills(lowerText string) []string {
	var found []string
	for _, skill := range softSkillVocabulary {
		if strings.Contains(lowerText, skill) {
			found = append(found, capitalizeFirst(skill))
		}
	}
	if len(found) > 10 {
		found = found[:10]
	}
	return found
}
