package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func testOptions() Options {
	opts := DefaultOptions()
	opts.Extraction.ReferenceDate = "2024-01"
	opts.Clock = fixedClock
	return opts
}

func newTestAnalyzer(t *testing.T, mutate func(*Options)) *Analyzer {
	t.Helper()
	opts := testOptions()
	if mutate != nil {
		mutate(&opts)
	}
	a, err := NewAnalyzer(opts)
	require.NoError(t, err)
	return a
}

func loadDocument(t *testing.T, name string) types.RawDocument {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	text := string(data)
	return types.RawDocument{
		Filename:      name,
		MimeType:      "text/plain",
		ExtractedText: text,
		WordCount:     len(strings.Fields(text)),
	}
}

func wordsDocument(name string, n int) types.RawDocument {
	text := strings.TrimSpace(strings.Repeat("engineer ", n))
	return types.RawDocument{Filename: name, ExtractedText: text, WordCount: n}
}

// stubExtractor returns a fixed partial, or err, after an optional delay
type stubExtractor struct {
	name    string
	partial *types.PartialProfile
	err     error
	delay   time.Duration
	panics  bool
}

func (s stubExtractor) Name() string { return s.name }

func (s stubExtractor) Extract(string) (*types.PartialProfile, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.panics {
		panic("extractor exploded")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.partial, nil
}

func failingExtractor(name string) stubExtractor {
	return stubExtractor{
		name: name,
		err:  &extraction.ExtractionError{Extractor: name, Message: "cannot read text"},
	}
}
