// Package extraction provides feature extractors that turn CV text into partial profiles.
package extraction

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Extractor names, also used as PartialProfile.Source
const (
	NameContact    = "contact"
	NameSkills     = "skills"
	NameExperience = "experience"
	NameEducation  = "education"
)

// Extractor turns plain CV text into the part of a profile it is responsible for.
// Implementations are stateless and safe for concurrent use. They return best-effort
// results for malformed text and only fail with *ExtractionError when the text
// cannot be processed at all.
type Extractor interface {
	Name() string
	Extract(text string) (*types.PartialProfile, error)
}

// Config holds the tunable extraction parameters
type Config struct {
	// PointsPerVerbYear is how many quality points one action verb per year of experience is worth
	PointsPerVerbYear float64 `mapstructure:"points_per_verb_year" json:"points_per_verb_year" validate:"gt=0"`
	// ReferenceDate pins "Present" in date ranges to a YYYY-MM month. Empty means the current month.
	ReferenceDate string `mapstructure:"reference_date" json:"reference_date,omitempty" validate:"omitempty,datetime=2006-01"`
}

// DefaultConfig returns the default extraction configuration
func DefaultConfig() Config {
	return Config{
		PointsPerVerbYear: 20,
	}
}

// ReferenceClock returns the clock used to resolve open-ended date ranges
func (c Config) ReferenceClock() (func() time.Time, error) {
	if c.ReferenceDate == "" {
		return time.Now, nil
	}
	ref, err := time.Parse("2006-01", c.ReferenceDate)
	if err != nil {
		return nil, &ConfigError{Message: "invalid reference_date", Cause: err}
	}
	return func() time.Time { return ref }, nil
}

// DefaultExtractors returns the built-in extractors in their fixed registration order
func DefaultExtractors(cfg Config) ([]Extractor, error) {
	if cfg.PointsPerVerbYear <= 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("points_per_verb_year must be positive, got %v", cfg.PointsPerVerbYear)}
	}
	clock, err := cfg.ReferenceClock()
	if err != nil {
		return nil, err
	}
	return []Extractor{
		NewContactExtractor(),
		NewSkillsExtractor(DefaultTaxonomy(), DefaultSoftSkills()),
		NewExperienceExtractor(cfg.PointsPerVerbYear, clock),
		NewEducationExtractor(),
	}, nil
}

// SafeExtract runs an extractor and converts a panic into an *ExtractionError
func SafeExtract(e Extractor, text string) (partial *types.PartialProfile, err error) {
	defer func() {
		if r := recover(); r != nil {
			partial = nil
			err = &ExtractionError{Extractor: e.Name(), Message: fmt.Sprintf("panic: %v", r)}
		}
	}()
	return e.Extract(text)
}

func checkText(name, text string) error {
	if !utf8.ValidString(text) {
		return &ExtractionError{Extractor: name, Message: "text is not valid UTF-8"}
	}
	return nil
}
