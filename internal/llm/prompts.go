package llm

import (
	"fmt"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/formatting"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// SystemInstruction is the shared instruction sent with both document
// prompts. Every provider receives the same semantic instruction; only
// the request envelope differs.
const SystemInstruction = "You are an expert resume and cover letter writer. " +
	"Use only the candidate data provided, tailor the content to the job description, " +
	"and output clean Markdown with no code fences and no commentary."

// ResumePrompt builds the user prompt for the resume completion from
// the profile, application context, and job description.
func ResumePrompt(p *types.ProfileSnapshot, app types.ApplicationContext, jobDescription string, lang types.Language) string {
	var b strings.Builder
	b.WriteString("Write a complete, professional resume in Markdown")
	writeLanguage(&b, lang)
	b.WriteString(fmt.Sprintf(" for the %s position at %s.\n\n", orUnspecified(app.Position), orUnspecified(app.Company)))
	writeProfile(&b, p)
	b.WriteString("JOB DESCRIPTION:\n" + jobDescription + "\n\n")
	b.WriteString("Highlight the experience and skills most relevant to the job description. Do not invent facts.")
	return b.String()
}

// CoverLetterPrompt builds the user prompt for the cover letter
// completion.
func CoverLetterPrompt(p *types.ProfileSnapshot, app types.ApplicationContext, jobDescription string, lang types.Language) string {
	var b strings.Builder
	b.WriteString("Write a concise, compelling cover letter in Markdown")
	writeLanguage(&b, lang)
	b.WriteString(fmt.Sprintf(" for the %s position at %s.\n\n", orUnspecified(app.Position), orUnspecified(app.Company)))
	writeProfile(&b, p)
	b.WriteString("JOB DESCRIPTION:\n" + jobDescription + "\n\n")
	b.WriteString("Three to four paragraphs, professional tone, addressed to the hiring manager. Do not invent facts.")
	return b.String()
}

func writeLanguage(b *strings.Builder, lang types.Language) {
	if lang != "" && lang != types.LangEnglish {
		fmt.Fprintf(b, ", written in %s,", lang)
	}
}

func writeProfile(b *strings.Builder, p *types.ProfileSnapshot) {
	if p == nil {
		p = types.PlaceholderProfile()
	}
	b.WriteString("CANDIDATE:\n")
	b.WriteString("Name: " + p.Name() + "\n")
	if p.Contact.Email != "" {
		b.WriteString("Email: " + p.Contact.Email + "\n")
	}
	if p.Contact.Phone != "" {
		b.WriteString("Phone: " + p.Contact.Phone + "\n")
	}
	if p.Contact.Location != "" {
		b.WriteString("Location: " + p.Contact.Location + "\n")
	}
	if p.Summary != "" {
		b.WriteString("Summary: " + p.Summary + "\n")
	}
	b.WriteString("\nWORK EXPERIENCE:\n" + formatting.Experience(p.Experience) + "\n")
	b.WriteString("\nEDUCATION:\n" + formatting.Education(p.Education) + "\n")
	b.WriteString("\nSKILLS:\n" + formatting.Skills(p.Skills) + "\n")
	b.WriteString("\nCERTIFICATIONS:\n" + formatting.Certifications(p.Certifications) + "\n")
	b.WriteString("\nPROJECTS:\n" + formatting.Projects(p.Projects) + "\n\n")
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unspecified"
	}
	return s
}
