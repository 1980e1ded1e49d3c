package types

// DocumentKind distinguishes the two generated documents.
type DocumentKind string

// The two document kinds produced per generation request.
const (
	KindResume      DocumentKind = "resume"
	KindCoverLetter DocumentKind = "cover_letter"
)

// Language selects the localization table used for template-generated
// content.
type Language string

// Supported languages.
const (
	LangEnglish    Language = "english"
	LangFrench     Language = "french"
	LangPortuguese Language = "portuguese"
	LangSpanish    Language = "spanish"
	LangGerman     Language = "german"
	LangChinese    Language = "chinese"
	LangJapanese   Language = "japanese"
)

// ApplicationContext carries the job application fields interpolated
// into generated text. It is never mutated by the pipeline.
type ApplicationContext struct {
	Company  string `json:"company"`
	Position string `json:"position"`
}

// GeneratedDocument is one output of a generation request. Documents
// are created fresh on every request and superseded, not mutated, on
// regenerate.
type GeneratedDocument struct {
	Kind           DocumentKind `json:"kind"`
	RawMarkdown    string       `json:"raw_markdown"`
	NormalizedText string       `json:"normalized_text"`
}
