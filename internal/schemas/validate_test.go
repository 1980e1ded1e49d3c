package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func TestValidateProfileAcceptsWellFormedSnapshot(t *testing.T) {
	p := &types.ProfileSnapshot{
		FullName: "Jane Doe",
		Contact:  types.ContactInfo{Email: "jane@example.com"},
		Skills:   []string{"Go", "SQL"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme", Title: "Engineer", StartDate: "2020-01", EndDate: "present"},
		},
	}
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NoError(t, ValidateProfile(raw))
}

func TestValidateProfileAcceptsEmptyObject(t *testing.T) {
	assert.NoError(t, ValidateProfile([]byte(`{}`)))
}

func TestValidateProfileRejectsWrongTypes(t *testing.T) {
	err := ValidateProfile([]byte(`{"full_name": 42, "skills": "not-a-list"}`))
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.GreaterOrEqual(t, len(verr.Errors), 2)
}

func TestValidateProfileRejectsUnknownFields(t *testing.T) {
	err := ValidateProfile([]byte(`{"salary_expectation": 100000}`))
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateProfileRejectsMalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{not json`))
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.False(t, ok, "malformed input is a load failure, not a field result")
}
