// Package scoring turns matcher and extractor outputs into 0-100 match
// scores. Two strategies coexist: the weighted strategy scores a full
// analysis, the tiered strategy scores a standalone profile.
package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cv-match/internal/profile"
	"cv-match/internal/similarity"
)

var (
	keywordRe      = regexp.MustCompile(`\b\w{4,}\b`)
	summaryHeaders = []string{"résumé", "resume", "profil", "profile", "summary", "about", "à propos"}
)

const experienceRelevanceThreshold = 0.35

// SummaryText pulls the professional summary out of a résumé: the lines
// under a labeled header, four at most, or the substantial lines among
// the first ten when no header exists.
func SummaryText(cvText string) string {
	lines := strings.Split(cvText, "\n")

	var section []string
	inSummary := false
	for _, line := range lines {
		lower := strings.ToLower(line)
		headed := false
		for _, h := range summaryHeaders {
			if strings.Contains(lower, h) {
				headed = true
				break
			}
		}
		if headed {
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
		if len(section) > 4 {
			section = section[:4]
		}
		return strings.Join(section, " ")
	}

	var head []string
	for _, line := range lines[:min(10, len(lines))] {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) > 10 {
			head = append(head, trimmed)
		}
	}
	return strings.Join(head, " ")
}

// ClassifyExperiences splits experiences by similarity with the job
// description. When nothing clears the threshold, a plain keyword
// overlap of at least two rescues experiences one by one.
func ClassifyExperiences(experiences []profile.Experience, jobDescription string, engine similarity.Engine) (relevant, irrelevant []profile.Experience) {
	if len(experiences) == 0 {
		return nil, nil
	}

	for _, exp := range experiences {
		sim := engine.Similarity(clip(exp.Text(), 500), clip(jobDescription, 500))
		if sim > experienceRelevanceThreshold {
			relevant = append(relevant, exp)
		} else {
			irrelevant = append(irrelevant, exp)
		}
	}

	if len(relevant) == 0 {
		jobKeywords := keywordSet(strings.ToLower(jobDescription))
		relevant, irrelevant = nil, nil
		for _, exp := range experiences {
			expKeywords := keywordSet(strings.ToLower(exp.Title + " " + exp.Company))
			if overlapCount(expKeywords, jobKeywords) >= 2 {
				relevant = append(relevant, exp)
			} else {
				irrelevant = append(irrelevant, exp)
			}
		}
	}
	return relevant, irrelevant
}

// EducationRelevance is the best similarity of any education entry with
// the job description.
func EducationRelevance(education []profile.Education, jobDescription string, engine similarity.Engine) float64 {
	best := 0.0
	for _, edu := range education {
		sim := engine.Similarity(clip(edu.Text(), 300), clip(jobDescription, 300))
		best = max(best, sim)
	}
	return best
}

// CertificationRelevance is the best similarity of any certification
// with the job description.
func CertificationRelevance(certifications []profile.Certification, jobDescription string, engine similarity.Engine) float64 {
	best := 0.0
	for _, cert := range certifications {
		sim := engine.Similarity(clip(cert.Text(), 300), clip(jobDescription, 300))
		best = max(best, sim)
	}
	return best
}

// ProjectRelevance is the best similarity of any project with the job
// description.
func ProjectRelevance(projects []profile.Project, jobDescription string, engine similarity.Engine) float64 {
	best := 0.0
	for _, project := range projects {
		sim := engine.Similarity(clip(project.Text(), 400), clip(jobDescription, 400))
		best = max(best, sim)
	}
	return best
}

// clip bounds s to n bytes, backing off to the previous rune boundary
// so the result stays valid UTF-8.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func keywordSet(lower string) map[string]struct{} {
	words := keywordRe.FindAllString(lower, -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func overlapCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

func overlapRatio(of, in map[string]struct{}) float64 {
	if len(of) == 0 {
		return 0
	}
	return float64(overlapCount(of, in)) / float64(len(of))
}
