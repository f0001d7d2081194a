package extraction

import (
	"errors"
	"testing"
	"time"

	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickingExtractor struct{}

func (panickingExtractor) Name() string { return "panicky" }

func (panickingExtractor) Extract(string) (*types.PartialProfile, error) {
	panic("boom")
}

func TestDefaultExtractors_Order(t *testing.T) {
	extractors, err := DefaultExtractors(DefaultConfig())
	require.NoError(t, err)

	names := make([]string, len(extractors))
	for i, e := range extractors {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{NameContact, NameSkills, NameExperience, NameEducation}, names)
}

func TestDefaultExtractors_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero points", Config{PointsPerVerbYear: 0}},
		{"bad reference date", Config{PointsPerVerbYear: 20, ReferenceDate: "last year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultExtractors(tt.cfg)
			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestConfig_ReferenceClock(t *testing.T) {
	clock, err := Config{ReferenceDate: "2023-06"}.ReferenceClock()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), clock())
}

func TestSafeExtract_RecoversPanic(t *testing.T) {
	partial, err := SafeExtract(panickingExtractor{}, "text")

	assert.Nil(t, partial)
	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "panicky", extractionErr.Extractor)
	assert.Contains(t, err.Error(), "boom")
}

func TestSafeExtract_PassesThrough(t *testing.T) {
	partial, err := SafeExtract(NewEducationExtractor(), "PhD in Chemistry")
	require.NoError(t, err)
	assert.Equal(t, EducationPhD, partial.Education.EducationLevel)
}

func TestExtractors_AreDeterministic(t *testing.T) {
	extractors, err := DefaultExtractors(Config{PointsPerVerbYear: 20, ReferenceDate: "2024-01"})
	require.NoError(t, err)

	for _, e := range extractors {
		first, err := e.Extract(sampleCV)
		require.NoError(t, err)
		second, err := e.Extract(sampleCV)
		require.NoError(t, err)
		assert.Equal(t, first, second, e.Name())
	}
}
