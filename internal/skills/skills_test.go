package skills

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestExtract_SectionLines(t *testing.T) {
	text := "Skills: Python, React, Docker\nOther content"
	got := Extract(text, nil)

	for _, want := range []string{"Python", "React", "Docker"} {
		if !containsFold(got, want) {
			t.Fatalf("extract: expected %q in %v", want, got)
		}
	}
}

func TestExtract_DottedTech(t *testing.T) {
	got := Extract("Built services with Node.js and Vue.js", nil)
	if !containsFold(got, "Node.js") {
		t.Fatalf("extract: expected Node.js in %v", got)
	}
	if !containsFold(got, "Vue.js") {
		t.Fatalf("extract: expected Vue.js in %v", got)
	}
}

func TestExtract_AcronymStoplist(t *testing.T) {
	got := Extract("CV with PDF export over HTTP and AWS", nil)
	for _, banned := range []string{"CV", "PDF", "HTTP"} {
		if containsFold(got, banned) {
			t.Fatalf("extract: stoplisted acronym %q leaked into %v", banned, got)
		}
	}
	if !containsFold(got, "AWS") {
		t.Fatalf("extract: expected AWS in %v", got)
	}
}

func TestExtract_PhraseCatalogue(t *testing.T) {
	got := Extract("experience in machine learning and data science", nil)
	if !containsFold(got, "Machine Learning") {
		t.Fatalf("extract: expected Machine Learning in %v", got)
	}
}

func TestExtract_Cap(t *testing.T) {
	var b strings.Builder
	b.WriteString("Skills: ")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "Skillname%02d, ", i)
	}
	got := Extract(b.String(), nil)
	if len(got) > 50 {
		t.Fatalf("extract: expected at most 50 skills, got %d", len(got))
	}
}

func TestDedup_FirstSeenWins(t *testing.T) {
	got := Dedup([]string{"React", "REACT", "react"}, 10)
	if len(got) != 1 {
		t.Fatalf("dedup: expected 1 entry, got %v", got)
	}
	if got[0] != "React" {
		t.Fatalf("dedup: expected first display form React, got %q", got[0])
	}
}

func TestDedup_DropsShortAndCapitalizesLower(t *testing.T) {
	got := Dedup([]string{"go", "docker"}, 10)
	if len(got) != 1 {
		t.Fatalf("dedup: expected short entry dropped, got %v", got)
	}
	if got[0] != "Docker" {
		t.Fatalf("dedup: expected capitalized Docker, got %q", got[0])
	}
}

func TestClassify_NamePatterns(t *testing.T) {
	cases := []struct {
		skill string
		want  Category
	}{
		{"Python", CategoryLanguages},
		{"React", CategoryFrameworks},
		{"AWS", CategoryCloud},
		{"TensorFlow", CategoryAIData},
		{"Wireshark", CategorySecurity},
		{"Docker", CategoryTools},
	}
	for _, tc := range cases {
		got, ok := Classify(tc.skill, "", nil)
		if !ok {
			t.Fatalf("classify %q: unexpectedly dropped", tc.skill)
		}
		if got != tc.want {
			t.Fatalf("classify %q: expected %s, got %s", tc.skill, tc.want, got)
		}
	}
}

func TestClassify_DefaultsToTools(t *testing.T) {
	got, ok := Classify("Figma", "", nil)
	if !ok || got != CategoryTools {
		t.Fatalf("classify: expected tools fallback, got %s ok=%v", got, ok)
	}
}

func TestClassify_DropsNonSkillsAndYears(t *testing.T) {
	if _, ok := Classify("pme", "", nil); ok {
		t.Fatalf("classify: expected pme dropped")
	}
	if _, ok := Classify("2019", "", nil); ok {
		t.Fatalf("classify: expected bare year dropped")
	}
}

func TestClassify_ContextKeywords(t *testing.T) {
	got, ok := Classify("Snyk", "cybersecurity tooling for dependency scanning", nil)
	if !ok || got != CategorySecurity {
		t.Fatalf("classify: expected security from context, got %s ok=%v", got, ok)
	}
}

func TestExtract_ConcurrentCallers(t *testing.T) {
	text := "Skills: Python, React, Docker\nExperience with machine learning and full stack web development using Node.js and AWS."
	want := Extract(text, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := Extract(text, nil)
				if len(got) != len(want) {
					t.Errorf("extract: concurrent call returned %d skills, want %d", len(got), len(want))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestClassifyAll_BucketsArePresent(t *testing.T) {
	out := ClassifyAll("Skills: Python, React, AWS", nil)
	if len(out) != len(Categories) {
		t.Fatalf("classify all: expected %d buckets, got %d", len(Categories), len(out))
	}
	if !containsFold(out[CategoryLanguages], "Python") {
		t.Fatalf("classify all: expected Python under languages, got %v", out[CategoryLanguages])
	}
	if !containsFold(out[CategoryFrameworks], "React") {
		t.Fatalf("classify all: expected React under frameworks, got %v", out[CategoryFrameworks])
	}
}
