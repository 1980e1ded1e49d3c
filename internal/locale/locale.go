// Package locale holds the static localization table used by the
// template generator: section headings and the sentence fragments the
// cover letter is assembled from. Unknown language codes fall back to
// English. Every key must be defined for every supported language; a
// missing key is a defect caught by Verify, not a runtime fallback.
package locale

import (
	"fmt"
	"reflect"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Strings is the full key set for one language. Fragments with %s
// placeholders are filled via fmt.Sprintf in fixed argument order.
type Strings struct {
	// Section headings
	Summary            string
	WorkExperience     string
	Education          string
	Skills             string
	Certifications     string
	Projects           string
	Languages          string
	Courses            string
	RelevantKeywords   string
	Technologies       string
	ContactInformation string

	// Contact labels
	Email     string
	Phone     string
	Location  string
	LinkedIn  string
	Portfolio string

	// Resume boilerplate
	Present        string // shown for an open-ended experience entry
	DefaultSummary string // used when the profile has no summary
	TailoredFor    string // footer: position, company
	References     string

	// Cover letter fragments, in assembly order
	DearHiringManager string
	CoverLetterIntro  string // position, company
	WithBackground    string
	SkillsSentence    string // top skills
	RecentRole        string // title, company
	Enthusiasm        string // company
	AttachedResume    string
	ThankYou          string
	LookForward       string
	Sincerely         string
}

// Get returns the string table for the given language, falling back to
// English for any code not in the table.
func Get(lang types.Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[types.LangEnglish]
}

// Supported returns the language codes present in the table.
func Supported() []types.Language {
	return []types.Language{
		types.LangEnglish, types.LangFrench, types.LangPortuguese,
		types.LangSpanish, types.LangGerman, types.LangChinese,
		types.LangJapanese,
	}
}

// Verify checks that every language defines every key. It is run at
// startup so an incomplete table fails fast instead of leaking empty
// boilerplate into generated documents.
func Verify() error {
	for _, lang := range Supported() {
		s, ok := tables[lang]
		if !ok {
			return fmt.Errorf("locale: language %q missing from table", lang)
		}
		v := reflect.ValueOf(s)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				return fmt.Errorf("locale: language %q missing key %q",
					lang, v.Type().Field(i).Name)
			}
		}
	}
	return nil
}
