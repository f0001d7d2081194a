package extraction

import (
	"errors"
	"testing"

	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractSkills(t *testing.T, text string) *types.SkillsAnalysis {
	t.Helper()
	partial, err := NewSkillsExtractor(DefaultTaxonomy(), DefaultSoftSkills()).Extract(text)
	require.NoError(t, err)
	require.NotNil(t, partial.Skills)
	assert.Equal(t, NameSkills, partial.Source)
	return partial.Skills
}

func TestSkillsExtractor_SampleCV(t *testing.T) {
	skills := extractSkills(t, sampleCV)

	assert.Equal(t, []string{
		"CI/CD", "Django", "Docker", "GitHub Actions", "Go", "JavaScript",
		"Kubernetes", "PostgreSQL", "Python", "REST API", "React Native",
	}, skills.TechnicalSkills)
	assert.Equal(t, []string{"communication", "leadership", "problem solving", "teamwork"}, skills.SoftSkills)
	assert.Equal(t, 15, skills.TotalSkillsFound)

	assert.Equal(t, []string{"Go", "JavaScript", "Python"}, skills.SkillCategories[CategoryProgrammingLanguages])
	assert.Equal(t, []string{"Docker", "GitHub Actions", "Kubernetes"}, skills.SkillCategories[CategoryCloudDevOps])
	assert.Len(t, skills.SkillCategories, 6)

	assert.Equal(t, 2, skills.SkillFrequency["Kubernetes"], "k8s and Kubernetes count as one skill")
	assert.Equal(t, 2, skills.SkillFrequency["PostgreSQL"])
	assert.NotContains(t, skills.TechnicalSkills, "React", "React inside React Native is not a separate skill")
}

func TestSkillsExtractor_CaseInsensitive(t *testing.T) {
	skills := extractSkills(t, "Worked with PYTHON, django and mongodb daily.")
	assert.Equal(t, []string{"Django", "MongoDB", "Python"}, skills.TechnicalSkills)
}

func TestSkillsExtractor_WordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Java is not found inside JavaScript", "Expert in JavaScript.", []string{"JavaScript"}},
		{"symbols are part of the name", "Wrote C++ and C# tools", []string{"C#", "C++"}},
		{"dotted names", "APIs in Node.js and Express.js", []string{"Express.js", "Node.js"}},
		{"substring of a word", "Pythonic idioms and Rustacean", []string{}},
		{"trailing punctuation", "I like Rust.", []string{"Rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := extractSkills(t, tt.text)
			assert.Equal(t, tt.expected, skills.TechnicalSkills)
		})
	}
}

func TestSkillsExtractor_AliasResolution(t *testing.T) {
	skills := extractSkills(t, "JS, JavaScript and js again. Golang services.")

	assert.Equal(t, []string{"Go", "JavaScript"}, skills.TechnicalSkills)
	assert.Equal(t, 3, skills.SkillFrequency["JavaScript"])
	assert.Equal(t, 2, skills.TotalSkillsFound)
}

func TestSkillsExtractor_AdjacentRepeatsCounted(t *testing.T) {
	tests := []struct {
		text     string
		skill    string
		expected int
	}{
		{"Python Python Python", "Python", 3},
		{"Go,Go,Go and Go", "Go", 4},
		{"C++ C++", "C++", 2},
		{"Docker/Docker", "Docker", 2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			skills := extractSkills(t, tt.text)
			assert.Equal(t, tt.expected, skills.SkillFrequency[tt.skill])
		})
	}
}

func TestSkillsExtractor_CaseSensitiveShortNames(t *testing.T) {
	skills := extractSkills(t, "Ready to go the extra mile, never slack, do more with less.")
	assert.Empty(t, skills.TechnicalSkills)

	skills = extractSkills(t, "Statistics in R and services in Go.")
	assert.Equal(t, []string{"Go", "R"}, skills.TechnicalSkills)
}

func TestSkillsExtractor_NoMatches(t *testing.T) {
	skills := extractSkills(t, "Nothing relevant in this sentence at all.")

	assert.Empty(t, skills.TechnicalSkills)
	assert.Empty(t, skills.SoftSkills)
	assert.Empty(t, skills.SkillCategories)
	assert.Equal(t, 0, skills.TotalSkillsFound)
}

func TestSkillsExtractor_TechnicalWinsOverSoft(t *testing.T) {
	extractor := NewSkillsExtractor(DefaultTaxonomy(), NewLexicon([]string{"python", "leadership"}))

	partial, err := extractor.Extract("Python and leadership")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python"}, partial.Skills.TechnicalSkills)
	assert.Equal(t, []string{"leadership"}, partial.Skills.SoftSkills)
	assert.Equal(t, 2, partial.Skills.TotalSkillsFound)
}

func TestSkillsExtractor_SwappableSources(t *testing.T) {
	taxonomy := NewTaxonomy([]TaxonomyEntry{
		{Skill: "Terraform", Category: "Infrastructure", Aliases: []string{"tf"}},
		{Skill: "Pulumi", Category: "Infrastructure"},
	})
	extractor := NewSkillsExtractor(taxonomy, NewLexicon([]string{"grit"}))

	partial, err := extractor.Extract("Infrastructure in TF and Pulumi; lots of grit. Also Python.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Pulumi", "Terraform"}, partial.Skills.TechnicalSkills)
	assert.Equal(t, []string{"grit"}, partial.Skills.SoftSkills)
	assert.Equal(t, map[string][]string{"Infrastructure": {"Pulumi", "Terraform"}}, partial.Skills.SkillCategories)

	category, ok := taxonomy.Category("Terraform")
	assert.True(t, ok)
	assert.Equal(t, "Infrastructure", category)
}

func TestSkillsExtractor_InvalidUTF8(t *testing.T) {
	_, err := NewSkillsExtractor(DefaultTaxonomy(), DefaultSoftSkills()).Extract("Python \xff\xfe")

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, NameSkills, extractionErr.Extractor)
}
