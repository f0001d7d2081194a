package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name      string
		doc       types.RawDocument
		wantField string
	}{
		{name: "empty text", doc: types.RawDocument{ExtractedText: "  \n\t"}, wantField: "extracted_text"},
		{name: "49 words", doc: wordsDocument("short.txt", 49), wantField: "word_count"},
		{name: "50 words", doc: wordsDocument("ok.txt", 50)},
		{name: "missing word count is not derived", doc: types.RawDocument{ExtractedText: strings.Repeat("engineer ", 80)}, wantField: "word_count"},
		{
			name:      "mostly symbols",
			doc:       types.RawDocument{ExtractedText: strings.Repeat("%%## 12 ", 60), WordCount: 120},
			wantField: "extracted_text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc, DefaultMinWordCount)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			if assert.True(t, errors.As(err, &validationErr)) {
				assert.Equal(t, tt.wantField, validationErr.Field)
			}
		})
	}
}

func TestValidateDocument_CustomMinimum(t *testing.T) {
	assert.NoError(t, ValidateDocument(wordsDocument("a.txt", 5), 5))
	assert.Error(t, ValidateDocument(wordsDocument("a.txt", 4), 5))
}
