package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProfileSkillsAfterVocabulary(t *testing.T) {
	job := "We need a React and Docker expert with strong Leadership"
	got := Extract(job, []string{"React", "Docker"})

	// Vocabulary hits come first, profile skills are deduplicated.
	assert.Equal(t, []string{"React", "Docker", "Leadership"}, got)
}

func TestExtractProfileOnlySkills(t *testing.T) {
	job := "We need a React and Docker expert"
	got := Extract(job, []string{"React", "Docker"})
	assert.Equal(t, []string{"React", "Docker"}, got)
}

func TestExtractIsIdempotentAndOrderStable(t *testing.T) {
	job := "Python, Django and PostgreSQL. Also Python again, plus Terraform."
	skills := []string{"Terraform", "Figma"}

	first := Extract(job, skills)
	second := Extract(job, skills)
	assert.Equal(t, first, second)

	seen := map[string]int{}
	for _, term := range first {
		seen[term]++
	}
	for term, n := range seen {
		assert.Equalf(t, 1, n, "duplicate term %q", term)
	}
}

func TestExtractWholeWordsOnly(t *testing.T) {
	// "Going" must not match "Go"; "Reactive" must not match "React".
	got := Extract("Going forward we use Reactive patterns", nil)
	assert.NotContains(t, got, "Go")
	assert.NotContains(t, got, "React")
}

func TestExtractEscapesRegexMetacharacters(t *testing.T) {
	// Skills with metacharacters must not break pattern compilation.
	assert.NotPanics(t, func() {
		Extract("We use C(armv7) and ().* weirdness", []string{"C(armv7)", "().*", "["})
	})
	got := Extract("We use C(armv7) daily", []string{"C(armv7)"})
	assert.Contains(t, got, "C(armv7)")
}

func TestExtractTermsEndingInSymbols(t *testing.T) {
	got := Extract("Looking for a C++ developer with C# and CI/CD experience", nil)
	assert.Contains(t, got, "C++")
	assert.Contains(t, got, "C#")
	assert.Contains(t, got, "CI/CD")

	// The symbol boundary still respects word edges.
	got = Extract("Our AC++ compiler team", nil)
	assert.NotContains(t, got, "C++")

	// At the very end of the text.
	got = Extract("Must know C#", nil)
	assert.Contains(t, got, "C#")
}

func TestExtractCaseInsensitive(t *testing.T) {
	got := Extract("we love PYTHON and docker", []string{"Docker"})
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "Docker")
}

func TestExtractEmptyJobDescription(t *testing.T) {
	assert.Empty(t, Extract("", []string{"React"}))
	assert.Empty(t, Extract("   \n", []string{"React"}))
}
