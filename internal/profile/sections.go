package profile

import (
	"regexp"
	"strings"

	"cv-match/internal/skills"
)

var (
	periodRe      = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|présent|present|now|aujourd'hui|current)`)
	leadingYearRe = regexp.MustCompile(`^\d{4}`)
	numberedRe    = regexp.MustCompile(`^\d+[.)]`)
	bulletTrimRe  = regexp.MustCompile(`^[-•*\d.)\s→·▸]+`)
	phoneLikeRe   = regexp.MustCompile(`\+?\d{10}`)
	internshipRe  = regexp.MustCompile(`(?i)stage|internship|alternance|apprentissage|apprenticeship|stagiaire|intern`)
	projectRe     = regexp.MustCompile(`(?i)projets?|project|portfolio|réalisations|achievements`)
)

var experienceSectionKeywords = []string{
	"expérience", "experience", "work", "employment", "emploi",
	"professional", "career",
}

var dutyActionVerbs = []string{
	"developed", "created", "built", "managed", "designed", "implemented",
	"développé", "créé", "construit", "géré", "conçu", "implémenté",
	"performed", "worked", "collaborated", "led", "improved", "gestion",
	"création", "animation", "organisation", "analyse", "augmentation",
}

// dutyExcludeWords filter out tool and platform listings that would
// otherwise read as responsibilities.
var dutyExcludeWords = []string{
	"linkedin", "facebook", "instagram", "twitter", "youtube", "tiktok",
	"mailchimp", "hootsuite", "hubspot", "canva", "adobe", "photoshop",
	"premiere", "google", "analytics", "tag manager", "semrush", "ahrefs",
}

// ExtractExperiences builds work history entries anchored on period
// markers, with a line-by-line fallback when date context yields fewer
// than two entries. Duplicate (title, company, period) triples collapse
// to the first occurrence; at most ten entries are returned.
func ExtractExperiences(text string, lines []string, cat *skills.Catalog) []Experience {
	var experiences []Experience

	hasSection := false
	for _, line := range lines {
		lower := strings.TrimSpace(strings.ToLower(line))
		if len(lower) < 50 && containsAny(lower, experienceSectionKeywords) {
			hasSection = true
			break
		}
	}

	if !hasSection {
		dates := periodRe.FindAllStringIndex(text, -1)
		if len(dates) > 10 {
			dates = dates[:10]
		}
		for _, loc := range dates {
			start := max(loc[0]-200, 0)
			end := min(loc[1]+500, len(text))
			context := text[start:end]
			contextLines := strings.Split(context, "\n")

			exp := Experience{Period: text[loc[0]:loc[1]]}
			exp.Title = findExperienceTitle(contextLines)
			exp.Company = findCompany(contextLines, exp.Title, exp.Period)
			exp.Duties = findDuties(contextLines)
			exp.Technologies = findTechnologies(context, cat)

			if exp.Title != "" || exp.Company != "" {
				experiences = append(experiences, exp)
			}
		}
	}

	if len(experiences) < 2 {
		experiences = append(experiences, scanExperienceLines(lines)...)
	}

	seen := make(map[[3]string]struct{}, len(experiences))
	unique := make([]Experience, 0, len(experiences))
	for _, exp := range experiences {
		if exp.Title == "" && exp.Company == "" {
			continue
		}
		key := [3]string{exp.Title, exp.Company, exp.Period}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, exp)
	}
	if len(unique) > 10 {
		unique = unique[:10]
	}
	return unique
}

func findExperienceTitle(contextLines []string) string {
	limit := min(len(contextLines), 5)
	for _, line := range contextLines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || len(line) >= 100 {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		head := line[:min(5, len(line))]
		if strings.ContainsAny(head, "+0123456789") {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, []string{"formation", "education", "compétences", "skills", "langues", "projets", "certifications"}) {
			continue
		}
		if leadingYearRe.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

func findCompany(contextLines []string, title, period string) string {
	for _, line := range contextLines {
		line = strings.TrimSpace(line)
		if len(line) <= 2 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, []string{"formation", "education", "expérience", "experience", "compétences", "skills"}) {
			continue
		}
		if leadingYearRe.MatchString(line) {
			continue
		}
		words := len(strings.Fields(line))
		upper := line == strings.ToUpper(line) && strings.ContainsFunc(line, isLetter)
		short := words <= 4 && len(line) > 3
		properNoun := line[0] >= 'A' && line[0] <= 'Z' && words <= 3
		if (upper || short || properNoun) && line != title && line != period {
			return line
		}
	}
	return ""
}

func findDuties(contextLines []string) []string {
	var duties []string
	for _, line := range contextLines {
		line = strings.TrimSpace(line)
		if len(line) <= 15 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAny(lower, dutyExcludeWords) {
			continue
		}
		startsWithVerb := false
		for _, verb := range dutyActionVerbs {
			if strings.HasPrefix(lower, verb) {
				startsWithVerb = true
				break
			}
		}
		bullet := strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
			strings.HasPrefix(line, "*") || strings.HasPrefix(line, "→") ||
			strings.HasPrefix(line, "·") || strings.HasPrefix(line, "▸") ||
			numberedRe.MatchString(line)
		if !startsWithVerb && !bullet {
			continue
		}
		duty := bulletTrimRe.ReplaceAllString(line, "")
		if words := strings.Fields(duty); len(words) > 20 {
			duty = strings.Join(words[:15], " ") + "..."
		}
		if len(duty) > 10 && !containsString(duties, duty) {
			duties = append(duties, duty)
		}
	}
	if len(duties) > 5 {
		duties = duties[:5]
	}
	return duties
}

func findTechnologies(context string, cat *skills.Catalog) []string {
	found := skills.Extract(context, cat)
	if len(found) > 10 {
		found = found[:10]
	}
	return found
}

func scanExperienceLines(lines []string) []Experience {
	var experiences []Experience
	var current Experience
	inExperience := false

	flush := func() {
		if current.Title != "" || current.Company != "" {
			experiences = append(experiences, current)
		}
		current = Experience{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < 3 {
			flush()
			inExperience = false
			continue
		}

		if m := periodRe.FindString(line); m != "" {
			flush()
			current = Experience{Period: m}
			inExperience = true
			continue
		}
		if !inExperience {
			continue
		}

		if current.Title == "" && len(line) > 10 && len(line) < 100 {
			if !strings.Contains(line, "@") && !phoneLikeRe.MatchString(line) {
				current.Title = line
				continue
			}
		}
		if current.Company == "" && (line == strings.ToUpper(line) || len(strings.Fields(line)) <= 4) {
			if line != current.Title {
				current.Company = line
				continue
			}
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
			strings.HasPrefix(line, "*") || strings.HasPrefix(line, "→") ||
			strings.HasPrefix(line, "·") || numberedRe.MatchString(line) {
			duty := bulletTrimRe.ReplaceAllString(line, "")
			if len(duty) > 10 {
				current.Duties = append(current.Duties, duty)
			}
		}
	}
	flush()
	return experiences
}

// ExtractInternships collects internship and apprenticeship blocks, five
// at most.
func ExtractInternships(lines []string) []Experience {
	var internships []Experience
	var current Experience
	inBlock := false

	flush := func() {
		if current.Title != "" {
			internships = append(internships, current)
		}
		current = Experience{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			inBlock = false
			continue
		}
		if internshipRe.MatchString(line) {
			flush()
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if current.Title == "" && len(line) > 5 {
			current.Title = line
		} else if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			duty := strings.TrimLeft(line, "-•* \t")
			if duty != "" {
				current.Duties = append(current.Duties, duty)
			}
		}
	}
	flush()

	if len(internships) > 5 {
		internships = internships[:5]
	}
	return internships
}

// ExtractProjects collects personal and portfolio project blocks, five at
// most.
func ExtractProjects(lines []string) []Project {
	var projects []Project
	var current Project
	inBlock := false

	flush := func() {
		if current.Name != "" {
			projects = append(projects, current)
		}
		current = Project{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			inBlock = false
			continue
		}
		if projectRe.MatchString(line) {
			flush()
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if current.Name == "" && len(line) > 3 && len(line) < 100 {
			current.Name = line
		} else if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			desc := strings.TrimLeft(line, "-•* \t")
			if current.Description == "" {
				current.Description = desc
			} else {
				current.Description += " " + desc
			}
		}
	}
	flush()

	if len(projects) > 5 {
		projects = projects[:5]
	}
	return projects
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
