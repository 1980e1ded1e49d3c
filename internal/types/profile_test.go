package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneIsDeep(t *testing.T) {
	original := &ProfileSnapshot{
		FullName: "Jane Doe",
		Skills:   []string{"Go", "SQL"},
		Experience: []ExperienceEntry{
			{Company: "Acme", Title: "Engineer", Technologies: []string{"Go"}},
		},
		Projects: []ProjectEntry{
			{Name: "widget", Technologies: []string{"React"}},
		},
	}

	clone := original.Clone()
	clone.Skills[0] = "Rust"
	clone.Experience[0].Technologies[0] = "Python"
	clone.Projects[0].Technologies[0] = "Vue"

	assert.Equal(t, "Go", original.Skills[0])
	assert.Equal(t, "Go", original.Experience[0].Technologies[0])
	assert.Equal(t, "React", original.Projects[0].Technologies[0])
}

func TestCloneNil(t *testing.T) {
	var p *ProfileSnapshot
	assert.Nil(t, p.Clone())
}

func TestNameFallsBackToPlaceholder(t *testing.T) {
	var p *ProfileSnapshot
	assert.Equal(t, PlaceholderName, p.Name())
	assert.Equal(t, PlaceholderName, (&ProfileSnapshot{}).Name())
	assert.Equal(t, "Jane", (&ProfileSnapshot{FullName: "Jane"}).Name())
}

func TestPlaceholderProfileHasContactDefaults(t *testing.T) {
	p := PlaceholderProfile()
	assert.Equal(t, PlaceholderName, p.FullName)
	assert.NotEmpty(t, p.Contact.Email)
}
