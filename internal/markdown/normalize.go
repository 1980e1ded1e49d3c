// Package markdown cleans AI and template output into a canonical
// line-oriented plain-text form. This is deliberately not a Markdown
// parser: each line is transformed independently, which is enough to
// strip the artifacts completion APIs wrap around their output.
package markdown

import (
	"regexp"
	"strings"
)

var (
	fenceLine    = regexp.MustCompile("^```[a-zA-Z]*$")
	headingOnly  = regexp.MustCompile(`^#+\s*$`)
	headingLead  = regexp.MustCompile(`^#+\s+`)
	boldSpan     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicSpan   = regexp.MustCompile(`\*(.+?)\*`)
	bulletLead   = regexp.MustCompile(`^[-*]\s+`)
	numberedLead = regexp.MustCompile(`^\d+\.\s+`)
	inlineLink   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`)
)

// Normalize applies the line rules to content and returns the
// newline-joined non-empty results. It is deterministic and
// idempotent, and must never fail on malformed input: if an internal
// error occurs the original content is returned unmodified.
func Normalize(content string) (result string) {
	defer func() {
		if recover() != nil {
			result = content
		}
	}()

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// Fence markers and the bare word "markdown" are API wrapping,
		// not content.
		if fenceLine.MatchString(trimmed) || trimmed == "markdown" {
			continue
		}
		if headingOnly.MatchString(trimmed) {
			continue
		}
		processed := stripLeadMarkers(trimmed)
		processed = boldSpan.ReplaceAllString(processed, "$1")
		processed = italicSpan.ReplaceAllString(processed, "$1")
		processed = inlineLink.ReplaceAllString(processed, "$1")
		processed = strings.TrimSpace(processed)
		if processed == "" {
			continue
		}
		out = append(out, processed)
	}
	return strings.Join(out, "\n")
}

// stripLeadMarkers removes heading, bullet, and numbered-list markers
// from the start of a line. The anchored patterns each consume one
// marker, so the strip loops to a fixed point: stacked markers like
// "- - item" must reduce in a single Normalize pass, keeping the whole
// transform idempotent.
func stripLeadMarkers(line string) string {
	for {
		next := headingLead.ReplaceAllString(line, "")
		next = bulletLead.ReplaceAllString(next, "")
		next = numberedLead.ReplaceAllString(next, "")
		if next == line {
			return line
		}
		line = next
	}
}
