package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsFenceArtifacts(t *testing.T) {
	raw := "```markdown\n# \n**Bold** text\n```"
	got := Normalize(raw)
	assert.Equal(t, "Bold text", got)
}

func TestNormalizeLineRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "code fence", input: "```", expected: ""},
		{name: "code fence with tag", input: "```markdown", expected: ""},
		{name: "bare markdown word", input: "markdown", expected: ""},
		{name: "heading marks only", input: "###", expected: ""},
		{name: "heading stripped", input: "## Experience", expected: "Experience"},
		{name: "bold collapsed", input: "**Acme Corp**", expected: "Acme Corp"},
		{name: "italic collapsed", input: "*emphasis*", expected: "emphasis"},
		{name: "bold before italic", input: "***both***", expected: "both"},
		{name: "bullet dash", input: "- item one", expected: "item one"},
		{name: "bullet star", input: "* item two", expected: "item two"},
		{name: "numbered list", input: "1. first", expected: "first"},
		{name: "stacked bullets", input: "- - item", expected: "item"},
		{name: "stacked numbers", input: "1. 2. step", expected: "step"},
		{name: "bullet under number", input: "1. - mixed", expected: "mixed"},
		{name: "stacked headings", input: "# # Title", expected: "Title"},
		{name: "link text kept", input: "[my site](https://example.com)", expected: "my site"},
		{name: "whitespace only dropped", input: "   \n\t\ncontent", expected: "content"},
		{name: "mixed", input: "### **Skills**\n- *Go*\n- [Docs](http://x)", expected: "Skills\nGo\nDocs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"```markdown\n# Title\n**Bold** and *italic*\n- bullet\n1. numbered\n[x](y)\n```",
		"plain text\nwith two lines",
		"odd *asterisk use * here",
		"- - doubled bullet\n1. 2. doubled number\n# # doubled heading",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equalf(t, once, twice, "not idempotent for %q", input)
	}
}

func TestNormalizeMalformedInputDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Normalize("**unclosed bold\n*unclosed italic\n[broken](link\n```\n####")
	})
}
