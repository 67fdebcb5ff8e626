// Package recommend produces rule-based improvement advice for a scored
// candidate.
package recommend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cv-match/internal/similarity"
)

// Inputs carries the analysis signals the rules fire on.
type Inputs struct {
	Score              float64
	MissingSkills      []string
	RelevantExperience int
	EducationMatch     float64
	CertMatch          float64
	CVText             string
	JobDescription     string
}

// Build evaluates the rules in a fixed order and returns at most five
// recommendations. The score-bucket rule always contributes one, so the
// result is never empty.
func Build(in Inputs, engine similarity.Engine) []string {
	if engine == nil {
		engine = similarity.NewLocal()
	}
	var recommendations []string

	if len(in.MissingSkills) > 0 {
		top := in.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Critical missing skills: %s. Consider training or certification in these areas.",
			strings.Join(top, ", ")))
	}

	if in.RelevantExperience < 2 {
		recommendations = append(recommendations,
			"Limited professional experience for this position. Highlight relevant personal projects or internships.")
	}

	if in.EducationMatch < 0.3 {
		recommendations = append(recommendations,
			"The education background does not directly match the position. Emphasize acquired skills and their applicability.")
	}

	if in.CertMatch < 0.3 {
		recommendations = append(recommendations,
			"No relevant certification identified. Consider recognized certifications in the field.")
	}

	switch {
	case in.Score < 50:
		recommendations = append(recommendations,
			"Weak match with the position. The candidate needs significant training or reorientation.")
	case in.Score < 70:
		recommendations = append(recommendations,
			"Moderate match. The candidate has foundations but needs to develop position-specific skills.")
	case in.Score < 85:
		recommendations = append(recommendations,
			"Good match. The candidate presents a suitable profile with some possible areas of improvement.")
	default:
		recommendations = append(recommendations,
			"Excellent match. The candidate's profile fits the position requirements very well.")
	}

	docSimilarity := engine.Similarity(clip(in.CVText, 1000), clip(in.JobDescription, 1000))
	if docSimilarity < 0.4 {
		recommendations = append(recommendations,
			"The overall resume content does not sufficiently match the job description. Rephrase some sections to better align the profile.")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "The resume matches the position well.")
	}
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
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
