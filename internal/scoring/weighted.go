package scoring

import (
	"math"
	"strings"

	"cv-match/internal/similarity"
)

// WeightedInputs carries everything the weighted strategy folds into a
// score.
type WeightedInputs struct {
	MatchingSkills     []string
	RequiredSkills     []string
	RelevantExperience int
	EducationMatch     float64
	CertMatch          float64
	CVText             string
	JobDescription     string
}

// Weighted scores a full analysis. Skill coverage dominates at 70%,
// followed by keyword overlap between the job description and the
// candidate summary at 20%; experience, document similarity, education
// and certifications share the rest. Weak coverage triggers cascading
// penalties and hard caps.
type Weighted struct {
	engine similarity.Engine
}

func NewWeighted(engine similarity.Engine) *Weighted {
	if engine == nil {
		engine = similarity.NewLocal()
	}
	return &Weighted{engine: engine}
}

// Score returns a 0-100 score rounded to two decimals.
func (w *Weighted) Score(in WeightedInputs) float64 {
	summary := SummaryText(in.CVText)

	// Without identified requirements, fall back to a direct keyword
	// comparison between the job description and the summary.
	if len(in.RequiredSkills) == 0 {
		summaryLower := strings.ToLower(summary)
		if summary == "" {
			summaryLower = strings.ToLower(clip(in.CVText, 500))
		}
		jobKeywords := keywordSet(strings.ToLower(in.JobDescription))
		if len(jobKeywords) == 0 {
			return 30.0
		}
		overlap := overlapRatio(jobKeywords, keywordSet(summaryLower))
		return round2(math.Min(math.Max(overlap*100, 0), 100))
	}

	skillsScore := float64(len(in.MatchingSkills)) / float64(len(in.RequiredSkills))
	if skillsScore < 0.5 {
		skillsScore *= 0.2
	}
	if skillsScore < 0.3 {
		skillsScore *= 0.1
	}

	summaryLower := strings.ToLower(summary)
	if summary == "" {
		summaryLower = strings.ToLower(clip(in.CVText, 500))
	}
	jobKeywords := keywordSet(strings.ToLower(in.JobDescription))
	summaryKeywords := keywordSet(summaryLower)
	summaryScore := 0.0
	if len(jobKeywords) > 0 && len(summaryKeywords) > 0 {
		summaryScore = overlapRatio(jobKeywords, summaryKeywords)
	}

	expScore := math.Min(float64(in.RelevantExperience)/3, 1.0)
	semanticScore := w.engine.Similarity(clip(in.CVText, 1500), clip(in.JobDescription, 1500))

	score := (skillsScore*0.70 +
		summaryScore*0.20 +
		expScore*0.05 +
		semanticScore*0.03 +
		in.EducationMatch*0.01 +
		in.CertMatch*0.01) * 100

	if skillsScore < 0.3 {
		score = math.Min(score, 25.0)
	}
	if skillsScore < 0.2 {
		score = math.Min(score, 15.0)
	}
	if summaryScore < 0.2 {
		score *= 0.5
	}
	if summaryScore < 0.3 {
		score *= 0.7
	}
	if skillsScore < 0.3 && summaryScore < 0.2 {
		score = math.Min(score, 20.0)
	}
	if skillsScore < 0.2 && summaryScore < 0.15 {
		score = math.Min(score, 10.0)
	}
	if skillsScore == 0 {
		score = math.Min(score, 15.0)
	}

	return round2(math.Min(math.Max(score, 0), 100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
