package draft

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/formatting"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func fullProfile() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		FullName: "Jane Doe",
		Contact:  types.ContactInfo{Email: "jane@example.com", Phone: "555-0100", Location: "Lisbon"},
		Summary:  "Backend engineer with eight years of experience.",
		Education: []types.EducationEntry{
			{Institution: "IST", Degree: "BSc", Field: "CS", StartDate: "2012", EndDate: "2015"},
		},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Title: "Engineer", StartDate: "2016-01", EndDate: "2020-06", Description: "Built APIs."},
			{Company: "Globex", Title: "Senior Engineer", StartDate: "2020-07", EndDate: "present"},
		},
		Skills:         []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		Languages:      []string{"English", "Portuguese"},
		Courses:        []string{"Distributed Systems"},
		Certifications: []types.CertEntry{{Name: "CKA", Issuer: "CNCF", Date: "2023"}},
		Projects:       []types.ProjectEntry{{Name: "tracker", Description: "Job tracker."}},
	}
}

func TestResumeSectionOrder(t *testing.T) {
	app := types.ApplicationContext{Company: "Initech", Position: "Backend Engineer"}
	out := Resume(fullProfile(), app, "Looking for Go and Docker experience", types.LangEnglish)

	sections := []string{
		"# Jane Doe",
		"Contact Information",
		"Professional Summary",
		"Relevant Keywords",
		"Work Experience",
		"Education",
		"Skills",
		"Certifications",
		"Projects",
		"Languages",
		"Courses",
		"Resume tailored for the Backend Engineer position at Initech.",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		assert.Greaterf(t, idx, last, "section %q out of order or missing", section)
		last = idx
	}
}

func TestResumeOmitsKeywordBlockWithoutMatches(t *testing.T) {
	out := Resume(fullProfile(), types.ApplicationContext{}, "zero overlap here", types.LangEnglish)
	assert.NotContains(t, out, "Relevant Keywords")
}

func TestResumeNeverEmptyOnZeroProfile(t *testing.T) {
	assert.NotPanics(t, func() {
		out := Resume(nil, types.ApplicationContext{}, "", types.LangEnglish)
		assert.NotEmpty(t, out)
		assert.Contains(t, out, types.PlaceholderName)
	})
	out := Resume(&types.ProfileSnapshot{}, types.ApplicationContext{}, "", types.LangEnglish)
	assert.Contains(t, out, formatting.NoExperience)
	assert.Contains(t, out, formatting.NoEducation)
	assert.Contains(t, out, formatting.NoSkills)
}

func TestCoverLetterUsesMostRecentRole(t *testing.T) {
	out := CoverLetter(fullProfile(), types.ApplicationContext{Company: "Initech", Position: "Backend Engineer"}, types.LangEnglish)
	// "present" end date wins over 2020-06.
	assert.Contains(t, out, "Senior Engineer")
	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "Backend Engineer position at Initech")
	assert.Contains(t, out, "Go, PostgreSQL, Docker")
	assert.Contains(t, out, "Sincerely,")
}

func TestCoverLetterSkipsRoleParagraphWhenUnresolvable(t *testing.T) {
	p := &types.ProfileSnapshot{
		FullName: "Jane Doe",
		Experience: []types.ExperienceEntry{
			// Unparseable end date: excluded from the comparison.
			{Company: "Acme", Title: "Engineer", EndDate: "a while ago"},
		},
	}
	out := CoverLetter(p, types.ApplicationContext{Company: "Initech"}, types.LangEnglish)
	assert.NotContains(t, out, "most recent role")
	assert.NotEmpty(t, out)
}

func TestCoverLetterNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		out := CoverLetter(nil, types.ApplicationContext{}, types.Language("unknown"))
		assert.NotEmpty(t, out)
	})
}

func TestResumeLocalized(t *testing.T) {
	out := Resume(fullProfile(), types.ApplicationContext{Company: "Initech", Position: "Ingénieur"}, "", types.LangFrench)
	assert.Contains(t, out, "Expérience professionnelle")
	assert.Contains(t, out, "CV adapté au poste de Ingénieur chez Initech.")
}

func TestParseEndDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		ok      bool
		ongoing bool
	}{
		{name: "iso month", raw: "2021-06", ok: true},
		{name: "iso date", raw: "2021-06-30", ok: true},
		{name: "slash month", raw: "06/2021", ok: true},
		{name: "year only", raw: "2021", ok: true},
		{name: "present", raw: "Present", ok: true, ongoing: true},
		{name: "empty", raw: "", ok: true, ongoing: true},
		{name: "garbage", raw: "a while ago", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseEndDate(tt.raw)
			if ok != tt.ok {
				t.Fatalf("parseEndDate(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if tt.ongoing && time.Since(got) > time.Minute {
				t.Errorf("parseEndDate(%q) should compare as now", tt.raw)
			}
		})
	}
}
