package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// DefaultMinWordCount is the smallest document accepted for analysis
const DefaultMinWordCount = 50

// minLetterRatio is the share of non-space characters that must be letters
const minLetterRatio = 0.3

// ValidateDocument rejects documents that are empty, too short or unreadable.
// doc.WordCount is trusted as given; ingestion is responsible for filling it.
func ValidateDocument(doc types.RawDocument, minWords int) error {
	if strings.TrimSpace(doc.ExtractedText) == "" {
		return &ValidationError{Field: "extracted_text", Message: "document text is empty"}
	}

	if doc.WordCount < minWords {
		return &ValidationError{
			Field:   "word_count",
			Message: fmt.Sprintf("document has %d words, at least %d required", doc.WordCount, minWords),
		}
	}

	if ratio := letterRatio(doc.ExtractedText); ratio < minLetterRatio {
		return &ValidationError{
			Field:   "extracted_text",
			Message: fmt.Sprintf("document text is unreadable (%.0f%% letters)", ratio*100),
		}
	}
	return nil
}

func letterRatio(text string) float64 {
	var letters, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}
