// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreGrade is the human-readable bucket for an overall score
type ScoreGrade string

// Score grades, lowest first
const (
	GradePoor      ScoreGrade = "Poor"
	GradeFair      ScoreGrade = "Fair"
	GradeGood      ScoreGrade = "Good"
	GradeVeryGood  ScoreGrade = "Very Good"
	GradeExcellent ScoreGrade = "Excellent"
)

// Component names used as keys in ComponentScores
const (
	ComponentSkills     = "skills"
	ComponentExperience = "experience"
	ComponentEducation  = "education"
	ComponentQuality    = "quality"
)

// Components lists score components in their reporting order
var Components = []string{ComponentSkills, ComponentExperience, ComponentEducation, ComponentQuality}

// ComponentBreakdown explains one component's contribution to the overall score
type ComponentBreakdown struct {
	Component     string  `json:"component"`
	RawScore      float64 `json:"raw_score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
}

// OverallScore is the scoring engine output
type OverallScore struct {
	OverallScore    float64              `json:"overall_score"`
	ComponentScores map[string]float64   `json:"component_scores"`
	ScoreGrade      ScoreGrade           `json:"score_grade"`
	PercentileRank  *int                 `json:"percentile_rank"`
	Breakdown       []ComponentBreakdown `json:"score_breakdown"`

	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
	Recommendations  []string `json:"recommendations"`
}
