package pdf

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// FileName derives the download filename from the user's name and the
// target company, reduced to a safe character set.
func FileName(kind types.DocumentKind, name, company string) string {
	label := "Resume"
	if kind == types.KindCoverLetter {
		label = "Cover_Letter"
	}

	var parts []string
	if n := sanitize(name); n != "" {
		parts = append(parts, n)
	}
	parts = append(parts, label)
	if c := sanitize(company); c != "" {
		parts = append(parts, c)
	}
	return fmt.Sprintf("%s.pdf", strings.Join(parts, "_"))
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = unsafeChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_.")
	return s
}
