package locale

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func TestVerifyPasses(t *testing.T) {
	require.NoError(t, Verify())
}

func TestEveryLanguageDefinesEveryKey(t *testing.T) {
	for _, lang := range Supported() {
		s := Get(lang)
		v := reflect.ValueOf(s)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmptyf(t, v.Field(i).String(),
				"language %s missing key %s", lang, v.Type().Field(i).Name)
		}
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	english := Get(types.LangEnglish)
	assert.Equal(t, english, Get(types.Language("klingon")))
	assert.Equal(t, english, Get(types.Language("")))
}

func TestLanguagesAreDistinct(t *testing.T) {
	assert.NotEqual(t, Get(types.LangEnglish).WorkExperience, Get(types.LangFrench).WorkExperience)
	assert.NotEqual(t, Get(types.LangSpanish).Sincerely, Get(types.LangGerman).Sincerely)
}
