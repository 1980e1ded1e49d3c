package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJobDescriptionPlainText(t *testing.T) {
	input := "Senior   Engineer\r\n\r\n\r\n\r\nWe need Go expertise.   \n"
	got := CleanJobDescription(input)
	assert.Equal(t, "Senior Engineer\n\nWe need Go expertise.", got)
}

func TestCleanJobDescriptionHTML(t *testing.T) {
	input := `<html><head><style>body{color:red}</style></head><body>
		<nav><a href="/">Home</a></nav>
		<h1>Senior Engineer</h1>
		<p>We need Go expertise.</p>
		<ul><li>5+ years experience</li><li>Docker and Kubernetes</li></ul>
		<script>trackPageView()</script>
		<footer>Copyright 2026</footer>
	</body></html>`

	got := CleanJobDescription(input)
	assert.Contains(t, got, "Senior Engineer")
	assert.Contains(t, got, "We need Go expertise.")
	assert.Contains(t, got, "- 5+ years experience")
	assert.Contains(t, got, "- Docker and Kubernetes")
	assert.NotContains(t, got, "trackPageView")
	assert.NotContains(t, got, "color:red")
	assert.NotContains(t, got, "Copyright")
	assert.NotContains(t, got, "<")
}

func TestCleanJobDescriptionNestedBlocksNotDuplicated(t *testing.T) {
	input := `<div><div><p>Only once.</p></div></div>`
	got := CleanJobDescription(input)
	assert.Equal(t, "Only once.", got)
}

func TestCleanJobDescriptionAngleBracketsInPlainText(t *testing.T) {
	// Inequalities in plain text must not trigger the HTML path.
	input := "Salary < 100k and experience > 5 years"
	assert.Equal(t, input, CleanJobDescription(input))
}

func TestCleanJobDescriptionEmpty(t *testing.T) {
	assert.Equal(t, "", CleanJobDescription(""))
	assert.Equal(t, "", CleanJobDescription("   \n\t  "))
}
