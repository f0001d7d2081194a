package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "documents.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `[
		{"filename": "a.txt", "extracted_text": "Go engineer with ten years", "word_count": 5},
		{"filename": "b.pdf", "mime_type": "application/pdf", "extracted_text": "Python developer"}
	]`)

	docs, err := LoadManifest(path)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].Filename)
	assert.Equal(t, MimePlain, docs[0].MimeType)
	assert.Equal(t, 5, docs[0].WordCount)
	assert.Equal(t, MimePDF, docs[1].MimeType)
	assert.Equal(t, 2, docs[1].WordCount)
}

func TestLoadManifest_SchemaViolation(t *testing.T) {
	tests := map[string]string{
		"not an array":     `{"filename": "a.txt"}`,
		"missing text":     `[{"filename": "a.txt"}]`,
		"unknown field":    `[{"filename": "a.txt", "extracted_text": "x", "score": 3}]`,
		"negative count":   `[{"filename": "a.txt", "extracted_text": "x", "word_count": -1}]`,
		"empty filename":   `[{"filename": "", "extracted_text": "x"}]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, content))

			var extractErr *ExtractError
			require.True(t, errors.As(err, &extractErr))
			assert.Equal(t, "manifest does not match schema", extractErr.Message)
		})
	}
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest("/nonexistent/documents.json")
	assert.Error(t, err)
}
