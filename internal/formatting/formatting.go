// Package formatting turns profile sub-collections into human-readable
// text blocks. Every function tolerates empty or missing input and
// returns a fixed "No X provided." sentinel instead of failing.
package formatting

import (
	"fmt"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Sentinels returned when a profile collection is empty.
const (
	NoEducation      = "No education provided."
	NoExperience     = "No work experience provided."
	NoSkills         = "No skills provided."
	NoLanguages      = "No languages provided."
	NoCourses        = "No courses provided."
	NoCertifications = "No certifications provided."
	NoProjects       = "No projects provided."
)

// Education renders education entries, one line each. Missing
// sub-fields render as empty segments; fully empty entries are
// filtered out.
func Education(entries []types.EducationEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsZero() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s in %s, %s (%s-%s)",
			e.Degree, e.Field, e.Institution, e.StartDate, e.EndDate))
	}
	if len(lines) == 0 {
		return NoEducation
	}
	return strings.Join(lines, "\n")
}

// Experience renders experience entries as multi-line blocks joined by
// one blank line. Entries keep their stored order.
func Experience(entries []types.ExperienceEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsZero() {
			continue
		}
		end := e.EndDate
		if end == "" {
			end = "Present"
		}
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%s at %s (%s-%s)", e.Title, e.Company, e.StartDate, end))
		if e.Description != "" {
			b.WriteString("\n" + e.Description)
		}
		if len(e.Technologies) > 0 {
			b.WriteString("\nTechnologies: " + strings.Join(e.Technologies, ", "))
		}
		blocks = append(blocks, b.String())
	}
	if len(blocks) == 0 {
		return NoExperience
	}
	return strings.Join(blocks, "\n\n")
}

// Certifications renders certification entries, one line each.
func Certifications(entries []types.CertEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsZero() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s (%s)", e.Name, e.Issuer, e.Date))
	}
	if len(lines) == 0 {
		return NoCertifications
	}
	return strings.Join(lines, "\n")
}

// Projects renders project entries as multi-line blocks joined by one
// blank line.
func Projects(entries []types.ProjectEntry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsZero() {
			continue
		}
		var b strings.Builder
		b.WriteString(e.Name)
		if e.URL != "" {
			b.WriteString(fmt.Sprintf(" (%s)", e.URL))
		}
		if e.Description != "" {
			b.WriteString("\n" + e.Description)
		}
		if len(e.Technologies) > 0 {
			b.WriteString("\nTechnologies: " + strings.Join(e.Technologies, ", "))
		}
		blocks = append(blocks, b.String())
	}
	if len(blocks) == 0 {
		return NoProjects
	}
	return strings.Join(blocks, "\n\n")
}

// Skills renders the skill list as a comma-separated line.
func Skills(items []string) string {
	return joined(items, NoSkills)
}

// Languages renders the language list as a comma-separated line.
func Languages(items []string) string {
	return joined(items, NoLanguages)
}

// Courses renders the course list as a comma-separated line.
func Courses(items []string) string {
	return joined(items, NoCourses)
}

func joined(items []string, sentinel string) string {
	kept := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return sentinel
	}
	return strings.Join(kept, ", ")
}
