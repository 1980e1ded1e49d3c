package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/pdf"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// renderPageTemplate is the client-side delivery path: a standalone
// HTML page that renders the document and generates the PDF in the
// browser. The server endpoint and this page are alternate transports
// for the same normalized content.
var renderPageTemplate = template.Must(template.New("render").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/html2pdf.js/0.10.1/html2pdf.bundle.min.js"></script>
<style>
  body { margin: 0; background: #525659; font-family: Georgia, "Times New Roman", serif; }
  #page {
    width: 210mm; min-height: 297mm; margin: 24px auto; padding: 20mm 22mm;
    box-sizing: border-box; background: #ffffff; font-size: 14px; line-height: 1.5;
  }
  #page h1 { font-size: 24px; margin: 0 0 4px 0; }
  #page p { margin: 0 0 10px 0; white-space: pre-wrap; }
  #toolbar { text-align: center; padding: 12px; }
  #toolbar button { padding: 8px 20px; font-size: 14px; cursor: pointer; }
</style>
</head>
<body>
<div id="toolbar"><button onclick="download()">Download PDF</button></div>
<div id="page">
{{range .Paragraphs}}{{if .Heading}}<h1>{{.Text}}</h1>
{{else}}<p>{{.Text}}</p>
{{end}}{{end}}</div>
<script>
function download() {
  html2pdf().set({
    filename: {{.Filename}},
    image: { type: "png" },
    html2canvas: { scale: 2 },
    jsPDF: { unit: "mm", format: "a4", orientation: "portrait" },
    pagebreak: { mode: ["css", "legacy"] }
  }).from(document.getElementById("page")).save();
}
</script>
</body>
</html>
`))

type renderPageData struct {
	Title      string
	Filename   string
	Paragraphs []renderParagraph
}

type renderParagraph struct {
	Text    string
	Heading bool
}

// handleRenderPage serves the browser-side PDF page. POST accepts the
// same body shape as /documents/pdf; GET accepts query parameters for
// link sharing.
func (s *Server) handleRenderPage(w http.ResponseWriter, r *http.Request) {
	var req PDFRequest
	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	default:
		q := r.URL.Query()
		req = PDFRequest{
			Content:      q.Get("content"),
			DocumentType: q.Get("documentType"),
			Name:         q.Get("name"),
			Company:      q.Get("company"),
			JobPosition:  q.Get("jobPosition"),
		}
		if req.DocumentType == "" {
			req.DocumentType = string(types.KindResume)
		}
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	kind := types.DocumentKind(req.DocumentType)
	filename := pdf.FileName(kind, req.Name, req.Company)
	data := renderPageData{
		Title:      filename,
		Filename:   filename,
		Paragraphs: splitParagraphs(req.Content),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := renderPageTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", "error", err)
	}
}

func splitParagraphs(content string) []renderParagraph {
	var out []renderParagraph
	for i, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, renderParagraph{
			Text:    block,
			Heading: i == 0 && !strings.Contains(block, "\n"),
		})
	}
	return out
}
