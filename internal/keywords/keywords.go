// Package keywords scans a job description for relevant terms. Matches
// come from a static vocabulary of common technical and soft skills
// plus the candidate's own skill list, and are used purely as
// supplementary content in generated documents.
package keywords

import (
	"regexp"
	"strings"
)

// vocabulary is the static list of terms checked against every job
// description, in match-priority order. Profile skills are appended
// after it.
var vocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Go",
	"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "R",
	"React", "Angular", "Vue", "Svelte", "Node.js", "Express",
	"Next.js", "Django", "Flask", "Spring", "Rails", "Laravel",
	"HTML", "CSS", "Sass", "Tailwind",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
	"GraphQL", "REST", "gRPC",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"AWS", "Azure", "GCP", "Linux", "Git", "CI/CD", "DevOps",
	"Agile", "Scrum", "Kanban", "TDD", "Microservices",
	"Machine Learning", "Deep Learning", "Data Analysis",
	"Pandas", "NumPy", "TensorFlow", "PyTorch", "NLP",
	"Leadership", "Communication", "Teamwork", "Problem Solving",
	"Project Management", "Mentoring", "Collaboration",
	"Time Management", "Critical Thinking",
}

// Extract returns the terms found as whole words in the job
// description: static vocabulary hits first, then profile skill hits,
// with duplicates skipped. Matching is case-insensitive. Running
// Extract twice on the same input yields an identical ordered list.
func Extract(jobDescription string, profileSkills []string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	var matches []string
	seen := make(map[string]bool)

	appendMatch := func(term string) {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" || seen[key] {
			return
		}
		if matchesWord(jobDescription, term) {
			seen[key] = true
			matches = append(matches, term)
		}
	}

	for _, term := range vocabulary {
		appendMatch(term)
	}
	for _, skill := range profileSkills {
		appendMatch(skill)
	}
	return matches
}

// matchesWord reports whether term occurs as a whole word in text.
// The term is escaped before the pattern is compiled so that terms
// containing regex metacharacters (C++, C#, Node.js) stay literal. A
// \b assertion only works next to a word character, so terms that
// start or end with a symbol get an explicit non-word-or-edge boundary
// instead; "C++" must match in "C++ developer" but not in "AC++".
func matchesWord(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}

	lead, trail := `\b`, `\b`
	if !isWordChar(term[0]) {
		lead = `(?:^|\W)`
	}
	if !isWordChar(term[len(term)-1]) {
		trail = `(?:\W|$)`
	}

	pattern, err := regexp.Compile(`(?i)` + lead + regexp.QuoteMeta(term) + trail)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}

func isWordChar(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
