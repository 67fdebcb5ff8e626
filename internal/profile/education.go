package profile

import (
	"regexp"
	"strings"
)

var educationSectionKeywords = []string{
	"formation", "education", "études", "studies", "diplôme", "diploma",
}

var degreeKeywords = []string{
	"master", "licence", "bachelor", "diplôme", "bac", "phd", "doctorat",
	"mba", "bts", "dut", "ingénieur", "engineer",
}

var schoolKeywords = []string{
	"université", "university", "école", "school", "institut", "institute",
	"college", "faculté", "faculty", "supérieure",
}

var (
	yearRangeRe     = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|\d{2})`)
	yearRangeLeadRe = regexp.MustCompile(`^\d{4}\s*[-–—]`)
	eduLabelRe      = regexp.MustCompile(`(?i)^(formation|education|études)[\s:]+`)
	trailingYearsRe = regexp.MustCompile(`\s+\d{4}.*$`)
	spacesRe        = regexp.MustCompile(`\s+`)
	nonWordSpaceRe  = regexp.MustCompile(`[^\w\s]`)
	schoolSpanRe    = regexp.MustCompile(`(?i)(?:` + strings.Join(schoolKeywords, "|") + `)[\s\w]+?(?:\d{4}|$)`)
)

// ExtractEducation parses the education section into degree, institution
// and year-range entries. Entries sharing a normalized degree and year
// range collapse to one; at most five are returned.
func ExtractEducation(lines []string) []Education {
	sectionStart, sectionEnd := educationSectionBounds(lines)

	var entries []Education
	var current Education

	flush := func() {
		if current.Degree != "" {
			entries = append(entries, current)
		}
		current = Education{}
	}

	for i := sectionStart; i < sectionEnd; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) < 3 {
			flush()
			continue
		}

		lower := strings.ToLower(line)
		hasYears := yearRangeRe.MatchString(line)
		hasDegree := containsAny(lower[:min(30, len(lower))], degreeKeywords)
		hasSchool := containsAny(lower, schoolKeywords)

		switch {
		case hasDegree && hasYears:
			flush()
			current = parseInlineEducation(line, hasSchool)
			continue
		case yearRangeLeadRe.MatchString(line):
			if current.Years == "" {
				current.Years = normalizeYearRange(line)
			}
			continue
		case hasDegree && current.Degree == "":
			current.Degree = cleanDegree(line)
			continue
		case hasSchool && current.Institution == "":
			school := trailingYearsRe.ReplaceAllString(line, "")
			current.Institution = spacesRe.ReplaceAllString(strings.TrimSpace(school), " ")
			continue
		}
	}
	flush()

	seen := make(map[[2]string]struct{}, len(entries))
	unique := make([]Education, 0, len(entries))
	for _, e := range entries {
		normalized := nonWordSpaceRe.ReplaceAllString(strings.ToLower(e.Degree), "")
		normalized = strings.TrimSpace(spacesRe.ReplaceAllString(normalized, " "))
		if len(normalized) > 50 {
			normalized = normalized[:50]
		}
		if len(normalized) <= 3 {
			continue
		}
		key := [2]string{normalized, strings.TrimSpace(e.Years)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		e.Degree = strings.TrimSpace(spacesRe.ReplaceAllString(e.Degree, " "))
		e.Institution = strings.TrimSpace(spacesRe.ReplaceAllString(e.Institution, " "))
		unique = append(unique, e)
	}
	if len(unique) > 5 {
		unique = unique[:5]
	}
	return unique
}

func educationSectionBounds(lines []string) (int, int) {
	start, end := 0, len(lines)
	for i, line := range lines {
		lower := strings.TrimSpace(strings.ToLower(line))
		if len(lower) >= 30 || !containsAny(lower, educationSectionKeywords) {
			continue
		}
		start = i + 1
		limit := min(len(lines), i+100)
		for j := i + 1; j < limit; j++ {
			next := strings.TrimSpace(strings.ToLower(lines[j]))
			if containsAny(next, []string{"expérience", "experience", "compétences", "skills", "projets", "certifications", "langues"}) {
				end = j
				break
			}
		}
		break
	}
	return start, end
}

// parseInlineEducation splits a one-line entry such as
// "Master en Marketing Digital École Supérieure de Commerce 2017 - 2019".
func parseInlineEducation(line string, hasSchool bool) Education {
	edu := Education{}

	var degreeParts []string
	for _, word := range strings.Fields(line) {
		wordLower := strings.ToLower(word)
		stop := false
		for _, kw := range schoolKeywords {
			if strings.Contains(wordLower, kw) {
				stop = true
				break
			}
		}
		if stop || leadingYearRe.MatchString(word) {
			break
		}
		degreeParts = append(degreeParts, word)
	}
	degree := eduLabelRe.ReplaceAllString(strings.Join(degreeParts, " "), "")
	degree = strings.TrimSpace(spacesRe.ReplaceAllString(degree, " "))
	if len(degree) > 5 {
		if len(degree) > 80 {
			degree = degree[:80]
		}
		edu.Degree = degree
	}

	if hasSchool {
		if m := schoolSpanRe.FindString(line); m != "" {
			school := trailingYearsRe.ReplaceAllString(strings.TrimSpace(m), "")
			edu.Institution = spacesRe.ReplaceAllString(strings.TrimSpace(school), " ")
			if len(edu.Institution) > 60 {
				edu.Institution = edu.Institution[:60]
			}
		}
	}

	edu.Years = normalizeYearRange(line)
	return edu
}

func normalizeYearRange(line string) string {
	m := yearRangeRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	end := m[2]
	if len(end) == 2 {
		end = "20" + end
	}
	return m[1] + " - " + end
}

func cleanDegree(line string) string {
	degree := eduLabelRe.ReplaceAllString(line, "")
	lower := strings.ToLower(degree)
	for _, kw := range schoolKeywords {
		if idx := strings.Index(lower, kw); idx >= 0 {
			degree = strings.TrimSpace(degree[:idx])
			break
		}
	}
	degree = trailingYearsRe.ReplaceAllString(degree, "")
	degree = strings.TrimSpace(spacesRe.ReplaceAllString(degree, " "))
	if len(degree) <= 5 {
		return ""
	}
	if len(degree) > 80 {
		degree = degree[:80]
	}
	return degree
}
