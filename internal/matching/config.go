package matching

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

const weightTolerance = 1e-9

// Weights of the three sub-scores in overall compatibility
type Weights struct {
	Skills     float64 `mapstructure:"skills" json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `mapstructure:"education" json:"education" validate:"gte=0,lte=1"`
}

// SkillParams weight required against preferred skill coverage
type SkillParams struct {
	RequiredWeight  float64 `mapstructure:"required_weight" json:"required_weight" validate:"gte=0,lte=1"`
	PreferredWeight float64 `mapstructure:"preferred_weight" json:"preferred_weight" validate:"gte=0,lte=1"`
	// NeutralScore is used when the requirements list no skills at all
	NeutralScore float64 `mapstructure:"neutral_score" json:"neutral_score" validate:"gte=0,lte=100"`
}

// ExperienceParams define the experience step function
type ExperienceParams struct {
	Base           float64 `mapstructure:"base" json:"base" validate:"gte=0,lte=100"`
	BonusPerYear   float64 `mapstructure:"bonus_per_year" json:"bonus_per_year" validate:"gte=0"`
	MaxBonus       float64 `mapstructure:"max_bonus" json:"max_bonus" validate:"gte=0"`
	PenaltyPerYear float64 `mapstructure:"penalty_per_year" json:"penalty_per_year" validate:"gte=0"`
}

// Config holds every tunable of the matcher
type Config struct {
	Weights           Weights          `mapstructure:"weights" json:"weights"`
	Skills            SkillParams      `mapstructure:"skills" json:"skills"`
	Experience        ExperienceParams `mapstructure:"experience" json:"experience"`
	StrengthThreshold float64          `mapstructure:"strength_threshold" json:"strength_threshold" validate:"gte=0,lte=100"`
	WeaknessThreshold float64          `mapstructure:"weakness_threshold" json:"weakness_threshold" validate:"gte=0,lte=100,ltefield=StrengthThreshold"`
	// MaxListedSkills caps how many missing skills a sentence names
	MaxListedSkills int `mapstructure:"max_listed_skills" json:"max_listed_skills" validate:"gte=1"`
}

// DefaultConfig returns the default matcher configuration
func DefaultConfig() Config {
	return Config{
		Weights: Weights{Skills: 0.5, Experience: 0.3, Education: 0.2},
		Skills:  SkillParams{RequiredWeight: 0.7, PreferredWeight: 0.3, NeutralScore: 75},
		Experience: ExperienceParams{
			Base:           75,
			BonusPerYear:   5,
			MaxBonus:       25,
			PenaltyPerYear: 15,
		},
		StrengthThreshold: 80,
		WeaknessThreshold: 50,
		MaxListedSkills:   5,
	}
}

// Validate checks parameter ranges and that both weight groups sum to 1.0
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Message: "invalid matching parameters", Cause: err}
	}
	w := c.Weights
	if sum := w.Skills + w.Experience + w.Education; math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{Message: fmt.Sprintf("compatibility weights must sum to 1.0, got %v", sum)}
	}
	if sum := c.Skills.RequiredWeight + c.Skills.PreferredWeight; math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{Message: fmt.Sprintf("required and preferred skill weights must sum to 1.0, got %v", sum)}
	}
	return nil
}
