package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with \t   multiple    spaces"
	result := CleanText(input)

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_BulletGlyphs(t *testing.T) {
	input := "• Led the team\n▪ Built things\n- Already a bullet"
	result := CleanText(input)

	assert.Equal(t, "- Led the team\n- Built things\n- Already a bullet", result)
}

func TestCleanText_DropsControlCharacters(t *testing.T) {
	input := "\uFEFFName\x00 Here\x07"
	assert.Equal(t, "Name Here", CleanText(input))
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_MessyFixture(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "messy_cv.txt"))
	require.NoError(t, err)

	result := CleanText(string(content))

	assert.Equal(t, "Jane Doe\n\nExperience\n- Led the platform team\n- Built CI/CD\n\nEducation\nMSc Computer Science", result)
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"one", 1},
		{"Go, Python and  C++", 4},
		{"- bullet • -- 2020 – 2021", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.input), tt.input)
	}
}
