// Package types defines the shared data model for the document
// generation pipeline: profile snapshots, generation requests,
// credentials, and generated documents.
package types

// ContactInfo holds the optional contact fields of a profile.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// IsZero reports whether every field of the entry is empty.
func (e EducationEntry) IsZero() bool {
	return e.Institution == "" && e.Degree == "" && e.Field == "" &&
		e.StartDate == "" && e.EndDate == ""
}

// ExperienceEntry is a single work experience record. Entries are kept
// in stored order; "most recent" is derived by parsing EndDate.
type ExperienceEntry struct {
	Company      string   `json:"company,omitempty"`
	Title        string   `json:"title,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// IsZero reports whether every field of the entry is empty.
func (e ExperienceEntry) IsZero() bool {
	return e.Company == "" && e.Title == "" && e.StartDate == "" &&
		e.EndDate == "" && e.Description == "" && len(e.Technologies) == 0
}

// CertEntry is a single certification record.
type CertEntry struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// IsZero reports whether every field of the entry is empty.
func (e CertEntry) IsZero() bool {
	return e.Name == "" && e.Issuer == "" && e.Date == ""
}

// ProjectEntry is a single project record.
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// IsZero reports whether every field of the entry is empty.
func (e ProjectEntry) IsZero() bool {
	return e.Name == "" && len(e.Technologies) == 0 && e.Description == "" && e.URL == ""
}

// ProfileSnapshot is the immutable input to a generation request.
// Every consumer must tolerate empty lists and empty fields.
type ProfileSnapshot struct {
	FullName       string            `json:"full_name"`
	Contact        ContactInfo       `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Languages      []string          `json:"languages,omitempty"`
	Courses        []string          `json:"courses,omitempty"`
	Certifications []CertEntry       `json:"certifications,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
}

// PlaceholderName is used when a profile has no name or could not be
// loaded at all.
const PlaceholderName = "Your Name"

// PlaceholderProfile returns the fixed fallback profile used when the
// profile collaborator reports NotFound. Generation is always
// attempted, so this is a working (if empty) snapshot.
func PlaceholderProfile() *ProfileSnapshot {
	return &ProfileSnapshot{
		FullName: PlaceholderName,
		Contact: ContactInfo{
			Email:    "email@example.com",
			Phone:    "(000) 000-0000",
			Location: "City, Country",
		},
	}
}

// Name returns the profile's full name, or the placeholder if absent.
func (p *ProfileSnapshot) Name() string {
	if p == nil || p.FullName == "" {
		return PlaceholderName
	}
	return p.FullName
}

// Clone returns a deep copy of the snapshot. Each generation request
// works on its own copy so concurrent edits to the live profile cannot
// corrupt an in-flight generation.
func (p *ProfileSnapshot) Clone() *ProfileSnapshot {
	if p == nil {
		return nil
	}
	out := *p
	out.Education = append([]EducationEntry(nil), p.Education...)
	out.Experience = make([]ExperienceEntry, len(p.Experience))
	for i, e := range p.Experience {
		e.Technologies = append([]string(nil), e.Technologies...)
		out.Experience[i] = e
	}
	out.Skills = append([]string(nil), p.Skills...)
	out.Languages = append([]string(nil), p.Languages...)
	out.Courses = append([]string(nil), p.Courses...)
	out.Certifications = append([]CertEntry(nil), p.Certifications...)
	out.Projects = make([]ProjectEntry, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Technologies = append([]string(nil), pr.Technologies...)
		out.Projects[i] = pr
	}
	return &out
}
