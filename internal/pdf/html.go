package pdf

import (
	"html/template"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// pageWidthPx fixes the browser viewport width so the rendered pixel
// height maps onto A4 pages deterministically.
const pageWidthPx = 794

var docTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  html, body { margin: 0; padding: 0; background: #ffffff; }
  body {
    width: {{.WidthPx}}px;
    box-sizing: border-box;
    padding: 60px 70px;
    font-family: Georgia, "Times New Roman", serif;
    font-size: 14px;
    line-height: 1.5;
    color: #1a1a1a;
  }
  h1 { font-size: 24px; margin: 0 0 4px 0; }
  p { margin: 0 0 10px 0; white-space: pre-wrap; }
</style>
</head>
<body>
{{range .Paragraphs}}{{if .Heading}}<h1>{{.Text}}</h1>
{{else}}<p>{{.Text}}</p>
{{end}}{{end}}</body>
</html>
`))

type paragraph struct {
	Text    string
	Heading bool
}

type docData struct {
	Title      string
	WidthPx    int
	Paragraphs []paragraph
}

// BuildHTML wraps a normalized document in the print stylesheet. The
// first line of a document is its name heading; the rest becomes
// paragraph blocks split on blank lines.
func BuildHTML(doc types.GeneratedDocument, title string) (string, error) {
	data := docData{
		Title:   title,
		WidthPx: pageWidthPx,
	}

	blocks := strings.Split(doc.NormalizedText, "\n\n")
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		data.Paragraphs = append(data.Paragraphs, paragraph{
			Text:    block,
			Heading: i == 0 && !strings.Contains(block, "\n"),
		})
	}

	var sb strings.Builder
	if err := docTemplate.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return sb.String(), nil
}
