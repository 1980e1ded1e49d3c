package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/formatting"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func TestResumePromptIncludesProfileAndJob(t *testing.T) {
	p := &types.ProfileSnapshot{
		FullName: "Jane Doe",
		Skills:   []string{"Go", "SQL"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Title: "Engineer", StartDate: "2020", EndDate: "2022"},
		},
	}
	app := types.ApplicationContext{Company: "Initech", Position: "Backend Engineer"}
	prompt := ResumePrompt(p, app, "We need Go expertise", types.LangEnglish)

	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "Engineer at Acme")
	assert.Contains(t, prompt, "Backend Engineer position at Initech")
	assert.Contains(t, prompt, "We need Go expertise")
	assert.NotContains(t, prompt, "written in")
}

func TestCoverLetterPromptMentionsLanguage(t *testing.T) {
	prompt := CoverLetterPrompt(nil, types.ApplicationContext{}, "job text", types.LangGerman)
	assert.Contains(t, prompt, "written in german")
	assert.Contains(t, prompt, "unspecified position at unspecified")
	// A nil profile falls back to the placeholder, never panics.
	assert.Contains(t, prompt, types.PlaceholderName)
}

func TestPromptsTolerateEmptyProfile(t *testing.T) {
	prompt := ResumePrompt(&types.ProfileSnapshot{}, types.ApplicationContext{}, "", types.LangEnglish)
	assert.Contains(t, prompt, formatting.NoExperience)
	assert.Contains(t, prompt, formatting.NoSkills)
	assert.False(t, strings.Contains(prompt, "%!"), "unfilled format verbs in prompt")
}
