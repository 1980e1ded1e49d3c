// Package ingestion cleans pasted job descriptions before generation.
// Users paste either plain text or raw HTML copied from a job board;
// both come out as normalized plain text.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlHint   = regexp.MustCompile(`(?i)<\s*(html|body|div|p|ul|li|br|span|h[1-6])\b`)
	multiSpace = regexp.MustCompile(`[ \t]+`)
	multiBlank = regexp.MustCompile(`\n\n\n+`)
)

// CleanJobDescription normalizes a pasted job description. HTML input
// is reduced to its visible text; chrome elements (scripts, styles,
// navigation) are dropped. Plain text passes through the same
// whitespace normalization.
func CleanJobDescription(input string) string {
	if htmlHint.MatchString(input) {
		if text, ok := htmlToText(input); ok {
			input = text
		}
	}
	return cleanText(input)
}

// htmlToText extracts the visible text of an HTML fragment. Block
// elements become line breaks so list structure survives.
func htmlToText(htmlContent string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", false
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, div").Each(func(_ int, s *goquery.Selection) {
		// Skip container elements; only leaf-most text blocks are
		// emitted to avoid duplicating nested content.
		if s.Children().Filter("p, li, div, ul, ol, h1, h2, h3, h4, h5, h6").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		// No recognizable blocks; fall back to the whole document text.
		out = doc.Text()
	}
	return out, true
}

// cleanText normalizes line endings and whitespace while keeping line
// structure intact.
func cleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
