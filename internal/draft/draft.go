// Package draft is the deterministic, provider-independent generator
// for resumes and cover letters. It is the guaranteed fallback path:
// it makes no external calls, never fails, and null-guards every
// field access so the user always gets a complete document.
package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/formatting"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/keywords"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/locale"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Resume assembles a complete Markdown resume from the profile, in
// fixed section order, localized per lang.
func Resume(p *types.ProfileSnapshot, app types.ApplicationContext, jobDescription string, lang types.Language) string {
	if p == nil {
		p = types.PlaceholderProfile()
	}
	t := locale.Get(lang)

	var b strings.Builder
	b.WriteString("# " + p.Name() + "\n\n")
	b.WriteString(contactBlock(p, t))

	summary := strings.TrimSpace(p.Summary)
	if summary == "" {
		summary = t.DefaultSummary
	}
	b.WriteString("## " + t.Summary + "\n" + summary + "\n\n")

	if matched := keywords.Extract(jobDescription, p.Skills); len(matched) > 0 {
		b.WriteString("## " + t.RelevantKeywords + "\n" + strings.Join(matched, ", ") + "\n\n")
	}

	b.WriteString("## " + t.WorkExperience + "\n" + formatting.Experience(p.Experience) + "\n\n")
	b.WriteString("## " + t.Education + "\n" + formatting.Education(p.Education) + "\n\n")
	b.WriteString("## " + t.Skills + "\n" + formatting.Skills(p.Skills) + "\n\n")
	b.WriteString("## " + t.Certifications + "\n" + formatting.Certifications(p.Certifications) + "\n\n")
	b.WriteString("## " + t.Projects + "\n" + formatting.Projects(p.Projects) + "\n\n")
	b.WriteString("## " + t.Languages + "\n" + formatting.Languages(p.Languages) + "\n\n")
	b.WriteString("## " + t.Courses + "\n" + formatting.Courses(p.Courses) + "\n\n")

	b.WriteString(fmt.Sprintf(t.TailoredFor, position(app), company(app)))
	b.WriteString("\n")
	return b.String()
}

// CoverLetter assembles a localized cover letter. The most recent
// experience entry is chosen by parsed end date; the previous-role
// paragraph is emitted only when both a company and a title were
// resolved.
func CoverLetter(p *types.ProfileSnapshot, app types.ApplicationContext, lang types.Language) string {
	if p == nil {
		p = types.PlaceholderProfile()
	}
	t := locale.Get(lang)

	var b strings.Builder

	// Header block
	b.WriteString(p.Name() + "\n")
	if p.Contact.Email != "" {
		b.WriteString(p.Contact.Email + "\n")
	}
	if p.Contact.Phone != "" {
		b.WriteString(p.Contact.Phone + "\n")
	}
	if p.Contact.Location != "" {
		b.WriteString(p.Contact.Location + "\n")
	}
	b.WriteString("\n" + time.Now().Format("January 2, 2006") + "\n\n")

	b.WriteString(t.DearHiringManager + "\n\n")
	b.WriteString(fmt.Sprintf(t.CoverLetterIntro, position(app), company(app)) + " ")
	b.WriteString(t.WithBackground)
	if top := topSkills(p.Skills, 3); top != "" {
		b.WriteString(" " + fmt.Sprintf(t.SkillsSentence, top))
	}
	b.WriteString("\n\n")

	if recent, ok := mostRecentExperience(p.Experience); ok && recent.Company != "" && recent.Title != "" {
		b.WriteString(fmt.Sprintf(t.RecentRole, recent.Title, recent.Company) + "\n\n")
	}

	b.WriteString(fmt.Sprintf(t.Enthusiasm, company(app)) + " ")
	b.WriteString(t.AttachedResume + " ")
	b.WriteString(t.ThankYou + " ")
	b.WriteString(t.LookForward + "\n\n")
	b.WriteString(t.Sincerely + "\n" + p.Name() + "\n")
	return b.String()
}

func contactBlock(p *types.ProfileSnapshot, t locale.Strings) string {
	var b strings.Builder
	write := func(label, value string) {
		if value != "" {
			b.WriteString(label + ": " + value + "\n")
		}
	}
	write(t.Email, p.Contact.Email)
	write(t.Phone, p.Contact.Phone)
	write(t.Location, p.Contact.Location)
	write(t.LinkedIn, p.Contact.LinkedIn)
	write(t.Portfolio, p.Contact.Portfolio)
	if b.Len() == 0 {
		return ""
	}
	return "## " + t.ContactInformation + "\n" + b.String() + "\n"
}

// mostRecentExperience returns the entry with the latest parseable end
// date. Entries without a parseable date are skipped here but still
// appear on the resume.
func mostRecentExperience(entries []types.ExperienceEntry) (types.ExperienceEntry, bool) {
	var best types.ExperienceEntry
	var bestTime time.Time
	found := false
	for _, e := range entries {
		if e.IsZero() {
			continue
		}
		end, ok := parseEndDate(e.EndDate)
		if !ok {
			continue
		}
		if !found || end.After(bestTime) {
			best = e
			bestTime = end
			found = true
		}
	}
	return best, found
}

func topSkills(skills []string, n int) string {
	kept := make([]string, 0, n)
	for _, s := range skills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kept = append(kept, s)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, ", ")
}

func position(app types.ApplicationContext) string {
	if app.Position == "" {
		return "the open"
	}
	return app.Position
}

func company(app types.ApplicationContext) string {
	if app.Company == "" {
		return "your company"
	}
	return app.Company
}
