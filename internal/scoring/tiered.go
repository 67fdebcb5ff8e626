package scoring

import (
	"math"
	"regexp"
	"strings"

	"cv-match/internal/profile"
	"cv-match/internal/similarity"
)

var shortJobWordRe = regexp.MustCompile(`\b\w{3,}\b`)

// Tiered scores a profile against a job description. The weight split
// between semantic similarity and skill coverage shifts with the
// coverage itself: strong coverage lets skills dominate, weak coverage
// defers to similarity. Multiplicative bonuses, floors and penalties
// shape the final value.
type Tiered struct {
	engine similarity.Engine
}

func NewTiered(engine similarity.Engine) *Tiered {
	if engine == nil {
		engine = similarity.NewLocal()
	}
	return &Tiered{engine: engine}
}

// Score returns a 0-100 score rounded to one decimal, or 0 when the job
// description or the profile is empty.
func (t *Tiered) Score(p *profile.Profile, jobDescription string, requiredSkills []string) float64 {
	if jobDescription == "" || p == nil {
		return 0.0
	}

	summary := p.Summary.Text
	cvFullText := renderProfileText(p, summary)
	if strings.TrimSpace(cvFullText) == "" {
		return 0.0
	}

	semanticFull := t.engine.Similarity(cvFullText, jobDescription)
	semanticSummary := 0.0
	if summary != "" {
		semanticSummary = t.engine.Similarity(summary, jobDescription)
	}
	semanticScore := max(semanticFull, semanticSummary*1.2)

	// Short postings get floors from raw keyword overlap so a terse but
	// on-target description is not punished.
	if len(strings.Fields(jobDescription)) <= 10 {
		jobWords := toSet(shortJobWordRe.FindAllString(strings.ToLower(jobDescription), -1))
		cvWords := toSet(shortJobWordRe.FindAllString(strings.ToLower(cvFullText), -1))
		common := overlapCount(jobWords, cvWords)
		if common >= 2 {
			semanticScore = max(semanticScore, 0.4)
		}
		if common >= 3 {
			semanticScore = max(semanticScore, 0.6)
		}
	}

	skillsScore := fractionalSkillRatio(requiredSkills, p.TechnicalSkills.All())

	summaryScore := 0.0
	if summary != "" {
		summaryScore = t.engine.Similarity(summary, jobDescription)
	}

	var score float64
	switch {
	case skillsScore >= 0.7:
		score = (semanticScore*0.25 + skillsScore*0.60 + summaryScore*0.15) * 100
	case skillsScore >= 0.5:
		score = (semanticScore*0.35 + skillsScore*0.50 + summaryScore*0.15) * 100
	case skillsScore >= 0.3:
		score = (semanticScore*0.50 + skillsScore*0.35 + summaryScore*0.15) * 100
	default:
		score = (semanticScore*0.65 + skillsScore*0.20 + summaryScore*0.15) * 100
	}

	switch {
	case skillsScore >= 0.8:
		score = math.Min(score*1.15, 100)
	case skillsScore >= 0.7:
		score = math.Min(score*1.10, 100)
	case skillsScore >= 0.6:
		score = math.Min(score*1.05, 100)
	}

	switch {
	case semanticScore >= 0.6:
		score = math.Min(score*1.10, 100)
	case semanticScore >= 0.5:
		score = math.Min(score*1.05, 100)
	case semanticScore >= 0.4:
		score = math.Min(score*1.02, 100)
	}

	if skillsScore < 0.2 && semanticScore < 0.15 && summaryScore < 0.1 {
		score = math.Min(score, 15.0)
	} else if skillsScore < 0.3 && semanticScore < 0.2 {
		score = math.Min(score, 30.0)
	}

	// High similarity with no skill overlap reads as a semantic false
	// positive.
	if skillsScore < 0.2 && semanticScore > 0.5 {
		score *= 0.7
	}

	if skillsScore >= 0.5 || semanticScore >= 0.4 {
		score = max(score, 40.0)
	}
	if skillsScore >= 0.6 || (semanticScore >= 0.5 && skillsScore >= 0.4) {
		score = max(score, 50.0)
	}

	if skillsScore >= 0.8 && semanticScore >= 0.6 {
		score = max(score, 75.0)
	} else if skillsScore >= 0.7 && semanticScore >= 0.5 {
		score = max(score, 65.0)
	}

	return round1(math.Min(math.Max(score, 0), 100))
}

// fractionalSkillRatio compares the top twenty required skills against
// the top thirty candidate skills. An exact match counts 1; a word
// overlap of at least 60% counts its fraction.
func fractionalSkillRatio(requiredSkills, candidateSkills []string) float64 {
	if len(requiredSkills) > 20 {
		requiredSkills = requiredSkills[:20]
	}
	if len(requiredSkills) == 0 || len(candidateSkills) == 0 {
		return 0.0
	}
	if len(candidateSkills) > 30 {
		candidateSkills = candidateSkills[:30]
	}

	candidateLower := make([]string, len(candidateSkills))
	for i, s := range candidateSkills {
		candidateLower[i] = strings.ToLower(s)
	}

	matching := 0.0
	for _, required := range requiredSkills {
		reqLower := strings.ToLower(required)

		exact := false
		for _, cv := range candidateLower {
			if cv == reqLower {
				exact = true
				break
			}
		}
		if exact {
			matching++
			continue
		}

		reqWords := toSet(shortJobWordRe.FindAllString(reqLower, -1))
		if len(reqWords) == 0 {
			continue
		}
		for _, cv := range candidateLower {
			cvWords := toSet(shortJobWordRe.FindAllString(cv, -1))
			if len(cvWords) == 0 {
				continue
			}
			overlap := float64(overlapCount(reqWords, cvWords)) / float64(len(reqWords))
			if overlap >= 0.6 {
				matching += overlap
				break
			}
		}
	}
	return matching / float64(len(requiredSkills))
}

// renderProfileText flattens the profile into one comparison span:
// summary, top skills, top three experiences and top two education
// entries.
func renderProfileText(p *profile.Profile, summary string) string {
	var parts []string
	if summary != "" {
		parts = append(parts, summary)
	}

	allSkills := p.TechnicalSkills.All()
	if len(allSkills) > 0 {
		if len(allSkills) > 20 {
			allSkills = allSkills[:20]
		}
		parts = append(parts, "Skills: "+strings.Join(allSkills, ", "))
	}

	if len(p.Experiences) > 0 {
		var expTexts []string
		for _, exp := range p.Experiences[:min(3, len(p.Experiences))] {
			var b strings.Builder
			if exp.Title != "" {
				b.WriteString(exp.Title + " ")
			}
			if exp.Company != "" {
				b.WriteString("at " + exp.Company + " ")
			}
			if len(exp.Duties) > 0 {
				duties := exp.Duties
				if len(duties) > 3 {
					duties = duties[:3]
				}
				b.WriteString("- " + strings.Join(duties, ", "))
			}
			if s := strings.TrimSpace(b.String()); s != "" {
				expTexts = append(expTexts, s)
			}
		}
		if len(expTexts) > 0 {
			parts = append(parts, "Experience: "+strings.Join(expTexts, " | "))
		}
	}

	if len(p.Education) > 0 {
		var eduTexts []string
		for _, edu := range p.Education[:min(2, len(p.Education))] {
			var b strings.Builder
			if edu.Degree != "" {
				b.WriteString(edu.Degree + " ")
			}
			if edu.Institution != "" {
				b.WriteString("at " + edu.Institution)
			}
			if s := strings.TrimSpace(b.String()); s != "" {
				eduTexts = append(eduTexts, s)
			}
		}
		if len(eduTexts) > 0 {
			parts = append(parts, "Education: "+strings.Join(eduTexts, " | "))
		}
	}

	return strings.Join(parts, " ")
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
