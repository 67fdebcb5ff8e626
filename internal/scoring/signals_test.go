package scoring

import (
	"strings"
	"testing"
	"unicode/utf8"

	"cv-match/internal/profile"
)

// stubEngine returns a fixed score for every pair.
type stubEngine struct {
	score float64
}

func (s stubEngine) Similarity(a, b string) float64 { return s.score }

// markerEngine scores high only when the first span carries the marker.
type markerEngine struct {
	marker string
}

func (m markerEngine) Similarity(a, b string) float64 {
	if strings.Contains(a, m.marker) {
		return 0.9
	}
	return 0.1
}

func TestSummaryText_LabeledSection(t *testing.T) {
	cv := "John Smith\nProfile\nSeasoned backend engineer with ten years on payment systems.\nLoves distributed databases and queues.\n\nExperience\n"
	got := SummaryText(cv)

	if !strings.Contains(got, "Seasoned backend engineer") {
		t.Fatalf("summary: expected first section line, got %q", got)
	}
	if !strings.Contains(got, "distributed databases") {
		t.Fatalf("summary: expected second section line, got %q", got)
	}
	if strings.Contains(got, "Experience") {
		t.Fatalf("summary: expected section to stop at the blank line, got %q", got)
	}
}

func TestSummaryText_SectionCappedAtFourLines(t *testing.T) {
	cv := "Summary\n" +
		"First line of the professional pitch here.\n" +
		"Second line of the professional pitch here.\n" +
		"Third line of the professional pitch here.\n" +
		"Fourth line of the professional pitch here.\n" +
		"Fifth line with the distinctive zebra word.\n"
	got := SummaryText(cv)

	if !strings.Contains(got, "Fourth line") {
		t.Fatalf("summary: expected fourth line kept, got %q", got)
	}
	if strings.Contains(got, "zebra") {
		t.Fatalf("summary: expected fifth line dropped, got %q", got)
	}
}

func TestSummaryText_FallbackToLeadingLines(t *testing.T) {
	cv := "Alice Martin\nBuilding data pipelines since 2015.\nBased in Toulouse with remote experience.\n"
	got := SummaryText(cv)

	if !strings.Contains(got, "data pipelines") {
		t.Fatalf("summary: expected fallback to leading lines, got %q", got)
	}
}

func TestClassifyExperiences_SimilarityThreshold(t *testing.T) {
	exps := []profile.Experience{
		{Title: "Django Developer", Company: "Webshop"},
		{Title: "Florist", Company: "Petals"},
	}
	relevant, irrelevant := ClassifyExperiences(exps, "Backend role", markerEngine{marker: "Django"})

	if len(relevant) != 1 || relevant[0].Title != "Django Developer" {
		t.Fatalf("classify: expected the Django experience relevant, got %v", relevant)
	}
	if len(irrelevant) != 1 || irrelevant[0].Title != "Florist" {
		t.Fatalf("classify: expected the florist experience irrelevant, got %v", irrelevant)
	}
}

func TestClassifyExperiences_KeywordFallback(t *testing.T) {
	exps := []profile.Experience{
		{Title: "Backend Developer", Company: "Django Corp"},
		{Title: "Florist", Company: "Petals"},
	}
	relevant, irrelevant := ClassifyExperiences(exps, "django backend services", stubEngine{score: 0})

	if len(relevant) != 1 || relevant[0].Title != "Backend Developer" {
		t.Fatalf("classify: expected keyword fallback to rescue the backend role, got %v", relevant)
	}
	if len(irrelevant) != 1 {
		t.Fatalf("classify: expected one irrelevant experience, got %v", irrelevant)
	}
}

func TestClassifyExperiences_Empty(t *testing.T) {
	relevant, irrelevant := ClassifyExperiences(nil, "anything", stubEngine{score: 1})
	if relevant != nil || irrelevant != nil {
		t.Fatalf("classify: expected nil lists for no experiences, got %v and %v", relevant, irrelevant)
	}
}

func TestEducationRelevance_BestEntryWins(t *testing.T) {
	edu := []profile.Education{
		{Degree: "Master in Computer Science", Institution: "ENSIMAG"},
		{Degree: "Baccalauréat", Institution: "Lycée"},
	}
	got := EducationRelevance(edu, "Computer science role", markerEngine{marker: "Computer Science"})
	if got != 0.9 {
		t.Fatalf("education relevance: expected 0.9, got %v", got)
	}

	if got := EducationRelevance(nil, "anything", stubEngine{score: 1}); got != 0 {
		t.Fatalf("education relevance: expected 0 without entries, got %v", got)
	}
}

func TestCertificationRelevance(t *testing.T) {
	certs := []profile.Certification{{Name: "AWS Solutions Architect", Org: "Amazon"}}
	got := CertificationRelevance(certs, "cloud role", stubEngine{score: 0.42})
	if got != 0.42 {
		t.Fatalf("certification relevance: expected 0.42, got %v", got)
	}
}

func TestClip_RuneBoundary(t *testing.T) {
	// A limit of 2 lands inside the two-byte é and must back off.
	if got := clip("développeur", 2); got != "d" {
		t.Fatalf("clip: expected cut before the split rune, got %q", got)
	}
	if got := clip("abc", 10); got != "abc" {
		t.Fatalf("clip: expected short string unchanged, got %q", got)
	}
	for n := 0; n <= len("éèê"); n++ {
		if !utf8.ValidString(clip("éèê", n)) {
			t.Fatalf("clip: expected valid UTF-8 at limit %d", n)
		}
	}
}

func TestProjectRelevance(t *testing.T) {
	projects := []profile.Project{
		{Name: "Inventory API", Description: "REST service"},
		{Name: "Portfolio site"},
	}
	got := ProjectRelevance(projects, "api role", markerEngine{marker: "Inventory"})
	if got != 0.9 {
		t.Fatalf("project relevance: expected 0.9, got %v", got)
	}
}
