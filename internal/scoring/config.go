package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// WeightTolerance is how far component weights may sum from 1.0
const WeightTolerance = 1e-9

// Weights are the component weights of the overall score. They must sum to 1.0.
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `mapstructure:"education" json:"education" validate:"gte=0,lte=1"`
	Quality    float64 `mapstructure:"quality" json:"quality" validate:"gte=0,lte=1"`
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Quality
}

// SkillsParams shape the skills component:
// min(100, MaxCountPoints*(1-e^(-3n/Saturation)) + CategoryPoints*min(c, DiversityThreshold) + DiversityBonus*[c >= DiversityThreshold])
type SkillsParams struct {
	MaxCountPoints     float64 `mapstructure:"max_count_points" json:"max_count_points" validate:"gte=0,lte=100"`
	Saturation         float64 `mapstructure:"saturation" json:"saturation" validate:"gt=0"`
	CategoryPoints     float64 `mapstructure:"category_points" json:"category_points" validate:"gte=0"`
	DiversityThreshold int     `mapstructure:"diversity_threshold" json:"diversity_threshold" validate:"gte=1"`
	DiversityBonus     float64 `mapstructure:"diversity_bonus" json:"diversity_bonus" validate:"gte=0"`
}

// ExperienceParams blend a saturating years curve with the experience quality score
type ExperienceParams struct {
	YearsWeight float64 `mapstructure:"years_weight" json:"years_weight" validate:"gte=0,lte=1"`
	YearsScale  float64 `mapstructure:"years_scale" json:"years_scale" validate:"gt=0"`
}

// EducationParams are the boosts for ranked institutions
type EducationParams struct {
	Top10Boost  float64 `mapstructure:"top10_boost" json:"top10_boost" validate:"gte=0"`
	Top50Boost  float64 `mapstructure:"top50_boost" json:"top50_boost" validate:"gte=0"`
	Top200Boost float64 `mapstructure:"top200_boost" json:"top200_boost" validate:"gte=0"`
}

// QualityParams are the penalties of the quality component
type QualityParams struct {
	MissingFieldPenalty float64 `mapstructure:"missing_field_penalty" json:"missing_field_penalty" validate:"gte=0"`
	KeywordPenalty      float64 `mapstructure:"keyword_penalty" json:"keyword_penalty" validate:"gte=0"`
	MinKeywords         int     `mapstructure:"min_keywords" json:"min_keywords" validate:"gte=1"`
}

// FeedbackParams are the component score thresholds behind the score feedback.
// A component at or above StrongThreshold is a strength; below ImprovementThreshold it is an improvement area.
type FeedbackParams struct {
	ExcellentThreshold   float64 `mapstructure:"excellent_threshold" json:"excellent_threshold" validate:"gte=0,lte=100,gtefield=StrongThreshold"`
	StrongThreshold      float64 `mapstructure:"strong_threshold" json:"strong_threshold" validate:"gte=0,lte=100"`
	ImprovementThreshold float64 `mapstructure:"improvement_threshold" json:"improvement_threshold" validate:"gte=0,lte=100,ltefield=StrongThreshold"`
	DevelopmentThreshold float64 `mapstructure:"development_threshold" json:"development_threshold" validate:"gte=0,lte=100,ltefield=ImprovementThreshold"`
}

// Config holds every tunable of the scoring engine
type Config struct {
	Weights    Weights          `mapstructure:"weights" json:"weights"`
	Skills     SkillsParams     `mapstructure:"skills" json:"skills"`
	Experience ExperienceParams `mapstructure:"experience" json:"experience"`
	Education  EducationParams  `mapstructure:"education" json:"education"`
	Quality    QualityParams    `mapstructure:"quality" json:"quality"`
	Feedback   FeedbackParams   `mapstructure:"feedback" json:"feedback"`
}

// DefaultConfig returns the default scoring configuration
func DefaultConfig() Config {
	return Config{
		Weights: Weights{Skills: 0.30, Experience: 0.30, Education: 0.20, Quality: 0.20},
		Skills: SkillsParams{
			MaxCountPoints:     75,
			Saturation:         20,
			CategoryPoints:     5,
			DiversityThreshold: 3,
			DiversityBonus:     10,
		},
		Experience: ExperienceParams{YearsWeight: 0.6, YearsScale: 5},
		Education:  EducationParams{Top10Boost: 10, Top50Boost: 6, Top200Boost: 3},
		Quality:    QualityParams{MissingFieldPenalty: 15, KeywordPenalty: 40, MinKeywords: 8},
		Feedback: FeedbackParams{
			ExcellentThreshold:   80,
			StrongThreshold:      70,
			ImprovementThreshold: 70,
			DevelopmentThreshold: 60,
		},
	}
}

// Validate checks parameter ranges and that the weights sum to 1.0
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Message: "invalid scoring parameters", Cause: err}
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > WeightTolerance {
		return &ConfigError{Message: fmt.Sprintf("component weights must sum to 1.0, got %v", sum)}
	}
	return nil
}
