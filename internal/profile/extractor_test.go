package profile

import (
	"strings"
	"testing"
)

const sampleResume = `John Smith
Fullstack Developer
john.smith@example.com
+33612345678
Paris, France
linkedin.com/in/johnsmith

Profile
Experienced fullstack developer building web applications with modern stacks.

Skills: Python, React, Docker

Experience
2019 - 2022
Senior Software Engineer
ACME
- Developed microservices handling millions of requests
- Led migration to new deployment infrastructure

Education
Master en Informatique Université de Paris 2015 - 2017

English - fluent
French - native`

func TestExtract_Identity(t *testing.T) {
	p := Extract(sampleResume, nil)

	if p.Identity.Email != "john.smith@example.com" {
		t.Fatalf("identity: expected email, got %q", p.Identity.Email)
	}
	if p.Identity.Name != "John Smith" {
		t.Fatalf("identity: expected name John Smith, got %q", p.Identity.Name)
	}
	if p.Identity.Phone != "+33612345678" {
		t.Fatalf("identity: expected phone, got %q", p.Identity.Phone)
	}
	if p.Identity.City != "Paris" {
		t.Fatalf("identity: expected city Paris, got %q", p.Identity.City)
	}
	if p.Identity.Country != "France" {
		t.Fatalf("identity: expected country France, got %q", p.Identity.Country)
	}
	if p.Identity.Title != "Fullstack Developer" {
		t.Fatalf("identity: expected title, got %q", p.Identity.Title)
	}
	if len(p.Identity.Links) == 0 || p.Identity.Links[0] != "linkedin.com/in/johnsmith" {
		t.Fatalf("identity: expected linkedin link, got %v", p.Identity.Links)
	}
}

func TestExtract_Summary(t *testing.T) {
	p := Extract(sampleResume, nil)

	if !strings.Contains(p.Summary.Text, "Experienced fullstack developer") {
		t.Fatalf("summary: expected labeled section text, got %q", p.Summary.Text)
	}
	if p.Summary.Seniority != SeniorityConfirmed {
		t.Fatalf("summary: expected seniority %s, got %q", SeniorityConfirmed, p.Summary.Seniority)
	}
	if p.Summary.Domain == "" {
		t.Fatalf("summary: expected a domain")
	}
}

func TestExtract_SkillsAndExperience(t *testing.T) {
	p := Extract(sampleResume, nil)

	all := p.TechnicalSkills.All()
	hasSkill := func(name string) bool {
		for _, s := range all {
			if strings.EqualFold(s, name) {
				return true
			}
		}
		return false
	}
	for _, want := range []string{"Python", "React", "Docker"} {
		if !hasSkill(want) {
			t.Fatalf("skills: expected %q in %v", want, all)
		}
	}

	var found *Experience
	for i := range p.Experiences {
		if p.Experiences[i].Title == "Senior Software Engineer" {
			found = &p.Experiences[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("experiences: expected Senior Software Engineer entry, got %+v", p.Experiences)
	}
	if found.Company != "ACME" {
		t.Fatalf("experiences: expected company ACME, got %q", found.Company)
	}
	if found.Period != "2019 - 2022" {
		t.Fatalf("experiences: expected period 2019 - 2022, got %q", found.Period)
	}
	if len(found.Duties) == 0 {
		t.Fatalf("experiences: expected duties")
	}
}

func TestExtract_Education(t *testing.T) {
	p := Extract(sampleResume, nil)

	if len(p.Education) == 0 {
		t.Fatalf("education: expected at least one entry")
	}
	edu := p.Education[0]
	if !strings.Contains(edu.Degree, "Master") {
		t.Fatalf("education: expected Master degree, got %q", edu.Degree)
	}
	if edu.Years != "2015 - 2017" {
		t.Fatalf("education: expected years 2015 - 2017, got %q", edu.Years)
	}
	if !strings.Contains(edu.Institution, "Université") {
		t.Fatalf("education: expected institution, got %q", edu.Institution)
	}
}

func TestExtract_Languages(t *testing.T) {
	p := Extract(sampleResume, nil)

	levels := map[string]string{}
	for _, lang := range p.Languages {
		levels[lang.Name] = lang.Level
	}
	if levels["English"] != LevelFluent {
		t.Fatalf("languages: expected English fluent, got %v", levels)
	}
	if levels["French"] != LevelFluent {
		t.Fatalf("languages: expected French fluent (native spelling), got %v", levels)
	}
}

func TestExtract_SparseInputYieldsSparseProfile(t *testing.T) {
	p := Extract("just a single line of text", nil)

	if p == nil {
		t.Fatalf("expected a profile, got nil")
	}
	if p.Identity.Email != "" || p.Identity.Phone != "" {
		t.Fatalf("expected empty contact fields, got %+v", p.Identity)
	}
	if len(p.Experiences) != 0 || len(p.Education) != 0 {
		t.Fatalf("expected no sections, got %+v", p)
	}
	if p.MatchScore != nil {
		t.Fatalf("expected nil match score on bare extraction")
	}
}

func TestExtract_Caps(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience\n")
	for i := 0; i < 15; i++ {
		b.WriteString("2010 - 2012\n")
		b.WriteString("Software Engineer Position Number Entry\n")
		b.WriteString("Company" + string(rune('A'+i)) + "\n\n")
	}
	p := Extract(b.String(), nil)

	if len(p.Experiences) > 10 {
		t.Fatalf("experiences: expected cap of 10, got %d", len(p.Experiences))
	}
}

func TestExperienceFormat(t *testing.T) {
	exp := Experience{
		Title:   "Backend Developer",
		Company: "Initech",
		Period:  "2020 - 2023",
		Duties:  []string{"built APIs", "ran migrations", "mentored juniors"},
	}
	got := exp.Format()
	want := "Backend Developer at Initech (2020 - 2023) - built APIs | ran migrations"
	if got != want {
		t.Fatalf("format: expected %q, got %q", want, got)
	}
}
