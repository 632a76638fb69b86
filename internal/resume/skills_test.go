package resume

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeSkills(t *testing.T) {
	text := "senior developer with python, django and postgresql. python again. docker and aws in production."

	skills := RecognizeSkills(text, Taxonomy())

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Django")
	assert.Contains(t, skills, "Postgresql")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Aws")

	// No duplicates even when a keyword appears twice.
	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, "duplicate skill %q", s)
	}

	// Sorted case-insensitively.
	assert.True(t, sort.SliceIsSorted(skills, func(i, j int) bool {
		return strings.ToLower(skills[i]) < strings.ToLower(skills[j])
	}))
}

func TestRecognizeSkillsSubstringFalsePositive(t *testing.T) {
	// Pure substring matching: "r" hits inside "research". Accepted
	// imprecision, locked in by this test.
	skills := RecognizeSkills("research assistant", Taxonomy())
	assert.Contains(t, skills, "R")
}

func TestRecognizeSkillsDeterministic(t *testing.T) {
	text := "kubernetes, terraform, go and react"
	first := RecognizeSkills(text, Taxonomy())
	second := RecognizeSkills(text, Taxonomy())
	assert.Equal(t, first, second)
}

func TestRecognizeSkillsEmptyText(t *testing.T) {
	skills := RecognizeSkills("", []string{"python", "go"})
	assert.Empty(t, skills)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"node.js", "Node.Js"},
		{"power bi", "Power Bi"},
		{"c++", "C++"},
		{"github actions", "Github Actions"},
		{"scikit-learn", "Scikit-Learn"},
		{"r", "R"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "titleCase(%q)", tt.in)
	}
}

func TestTaxonomyLoaded(t *testing.T) {
	keywords := Taxonomy()
	require.NotEmpty(t, keywords)
	assert.GreaterOrEqual(t, len(keywords), 100)
	for _, kw := range keywords {
		assert.Equal(t, strings.ToLower(kw), kw, "taxonomy entries must be lowercase")
		assert.False(t, strings.HasPrefix(kw, "#"))
	}
}
