package scoring

import "testing"

const weightedCV = "Profile\nPython developer building django services\n"

const weightedJob = "python django developer services platform"

func TestWeighted_FullCoverage(t *testing.T) {
	w := NewWeighted(stubEngine{score: 0.5})
	got := w.Score(WeightedInputs{
		MatchingSkills:     []string{"Python", "Django"},
		RequiredSkills:     []string{"Python", "Django"},
		RelevantExperience: 3,
		EducationMatch:     1.0,
		CertMatch:          1.0,
		CVText:             weightedCV,
		JobDescription:     weightedJob,
	})

	// 0.70 skills + 0.16 summary + 0.05 experience + 0.015 semantic
	// + 0.01 education + 0.01 certifications, times 100.
	if got != 94.5 {
		t.Fatalf("weighted: expected 94.5, got %v", got)
	}
}

func TestWeighted_WeakCoverageIsCapped(t *testing.T) {
	w := NewWeighted(stubEngine{score: 0})
	required := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10"}
	got := w.Score(WeightedInputs{
		MatchingSkills: required[:2],
		RequiredSkills: required,
		CVText:         weightedCV,
		JobDescription: weightedJob,
	})

	// A 0.2 ratio shrinks to 0.004 through both cascades, and the
	// sub-0.2 cap pins the score at 15 despite the strong summary.
	if got != 15.0 {
		t.Fatalf("weighted: expected 15.0, got %v", got)
	}
}

func TestWeighted_NoMatchingSkills(t *testing.T) {
	w := NewWeighted(stubEngine{score: 0})
	got := w.Score(WeightedInputs{
		RequiredSkills: []string{"Python", "Django", "Kubernetes"},
		CVText:         "Gardener\nTending plants and flowers daily\n",
		JobDescription: "python django backend developer",
	})

	if got > 15.0 {
		t.Fatalf("weighted: expected at most 15 with zero matches, got %v", got)
	}
}

func TestWeighted_NoRequiredSkillsFallsBackToKeywords(t *testing.T) {
	w := NewWeighted(stubEngine{score: 0})
	got := w.Score(WeightedInputs{
		CVText:         weightedCV,
		JobDescription: weightedJob,
	})

	// Four of the five job keywords appear in the summary.
	if got != 80.0 {
		t.Fatalf("weighted: expected 80.0 keyword fallback, got %v", got)
	}
}

func TestWeighted_NoRequiredSkillsAndNoJobKeywords(t *testing.T) {
	w := NewWeighted(stubEngine{score: 0})
	got := w.Score(WeightedInputs{
		CVText:         weightedCV,
		JobDescription: "go js ok",
	})

	if got != 30.0 {
		t.Fatalf("weighted: expected neutral 30.0, got %v", got)
	}
}

func TestWeighted_BoundedToHundred(t *testing.T) {
	w := NewWeighted(stubEngine{score: 1})
	got := w.Score(WeightedInputs{
		MatchingSkills:     []string{"Python"},
		RequiredSkills:     []string{"Python"},
		RelevantExperience: 9,
		EducationMatch:     1.0,
		CertMatch:          1.0,
		CVText:             weightedCV,
		JobDescription:     weightedJob,
	})

	if got < 0 || got > 100 {
		t.Fatalf("weighted: expected score in [0,100], got %v", got)
	}
}
