// Package analyzer is the top-level engine: it extracts a candidate
// profile from résumé text and scores it against a job description.
package analyzer

import (
	"cv-match/internal/matching"
	"cv-match/internal/profile"
	"cv-match/internal/recommend"
	"cv-match/internal/requirements"
	"cv-match/internal/scoring"
	"cv-match/internal/similarity"
	"cv-match/internal/skills"
)

// MatchResult is the outcome of a full analysis.
type MatchResult struct {
	Score                float64          `json:"score"`
	MatchingSkills       []string         `json:"matching_skills"`
	MissingSkills        []string         `json:"missing_skills"`
	RelevantExperience   []string         `json:"relevant_experience"`
	IrrelevantExperience []string         `json:"irrelevant_experience"`
	Recommendations      []string         `json:"recommendations"`
	Languages            []string         `json:"languages"`
	CandidateProfile     *profile.Profile `json:"candidate_profile"`
}

// Config assembles an Analyzer. Zero values get working defaults: a
// local similarity engine and the built-in skill catalog.
type Config struct {
	Engine  similarity.Engine
	Catalog *skills.Catalog
}

type Analyzer struct {
	engine   similarity.Engine
	catalog  *skills.Catalog
	matcher  *matching.Matcher
	weighted *scoring.Weighted
	tiered   *scoring.Tiered
}

func New(cfg Config) *Analyzer {
	if cfg.Engine == nil {
		cfg.Engine = similarity.NewLocal()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = skills.DefaultCatalog()
	}
	return &Analyzer{
		engine:   cfg.Engine,
		catalog:  cfg.Catalog,
		matcher:  matching.New(cfg.Engine),
		weighted: scoring.NewWeighted(cfg.Engine),
		tiered:   scoring.NewTiered(cfg.Engine),
	}
}

// ExtractProfile builds the structured profile for a résumé and scores
// its overall fit when a job description is given. A scoring failure
// leaves the match score unset rather than erroring.
func (a *Analyzer) ExtractProfile(cvText, jobDescription string) *profile.Profile {
	p := profile.Extract(cvText, a.catalog)
	if jobDescription != "" {
		guard(func() {
			required := requirements.Extract(jobDescription, a.catalog)
			score := a.tiered.Score(p, jobDescription, required)
			p.MatchScore = &score
		})
	}
	return p
}

// Analyze runs the full pipeline: profile extraction, requirement
// derivation, skill matching, experience classification, scoring and
// recommendations. Each stage is isolated; a failing stage leaves its
// outputs at the zero value and the rest of the result intact.
func (a *Analyzer) Analyze(cvText, jobDescription string) *MatchResult {
	candidateProfile := a.ExtractProfile(cvText, jobDescription)

	candidateSkills := candidateProfile.TechnicalSkills.All()
	candidateSkills = append(candidateSkills, candidateProfile.SoftSkills...)

	var requiredSkills []string
	guard(func() { requiredSkills = requirements.Extract(jobDescription, a.catalog) })

	var matchingSkills, missingSkills []string
	guard(func() { matchingSkills, missingSkills = a.matcher.Partition(candidateSkills, requiredSkills) })

	var relevant, irrelevant []profile.Experience
	guard(func() {
		relevant, irrelevant = scoring.ClassifyExperiences(candidateProfile.Experiences, jobDescription, a.engine)
	})

	var educationMatch, certMatch float64
	guard(func() { educationMatch = scoring.EducationRelevance(candidateProfile.Education, jobDescription, a.engine) })
	guard(func() {
		certMatch = scoring.CertificationRelevance(candidateProfile.Certifications, jobDescription, a.engine)
	})

	var score float64
	guard(func() {
		score = a.weighted.Score(scoring.WeightedInputs{
			MatchingSkills:     matchingSkills,
			RequiredSkills:     requiredSkills,
			RelevantExperience: len(relevant),
			EducationMatch:     educationMatch,
			CertMatch:          certMatch,
			CVText:             cvText,
			JobDescription:     jobDescription,
		})
	})

	var recommendations []string
	guard(func() {
		recommendations = recommend.Build(recommend.Inputs{
			Score:              score,
			MissingSkills:      missingSkills,
			RelevantExperience: len(relevant),
			EducationMatch:     educationMatch,
			CertMatch:          certMatch,
			CVText:             cvText,
			JobDescription:     jobDescription,
		}, a.engine)
	})

	languages := make([]string, 0, len(candidateProfile.Languages))
	for _, lang := range candidateProfile.Languages {
		languages = append(languages, lang.Name)
	}

	return &MatchResult{
		Score:                score,
		MatchingSkills:       emptyIfNil(matchingSkills),
		MissingSkills:        emptyIfNil(missingSkills),
		RelevantExperience:   formatExperiences(relevant),
		IrrelevantExperience: formatExperiences(irrelevant),
		Recommendations:      emptyIfNil(recommendations),
		Languages:            languages,
		CandidateProfile:     candidateProfile,
	}
}

func formatExperiences(experiences []profile.Experience) []string {
	if len(experiences) > 5 {
		experiences = experiences[:5]
	}
	out := make([]string, 0, len(experiences))
	for _, exp := range experiences {
		out = append(out, exp.Format())
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// guard runs fn and swallows a panic, leaving whatever fn did not
// assign at its zero value.
func guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
