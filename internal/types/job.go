// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements is the caller-supplied description of a role to match against
type JobRequirements struct {
	RequiredSkills    []string `json:"required_skills" validate:"dive,required"`
	PreferredSkills   []string `json:"preferred_skills" validate:"dive,required"`
	MinimumExperience float64  `json:"minimum_experience" validate:"gte=0"`
	JobDescription    string   `json:"job_description,omitempty"`
}

// JobCompatibility reports how well a profile fits a set of job requirements
type JobCompatibility struct {
	OverallCompatibility    float64 `json:"overall_compatibility"`
	SkillCompatibility      float64 `json:"skill_compatibility"`
	ExperienceCompatibility float64 `json:"experience_compatibility"`
	EducationCompatibility  float64 `json:"education_compatibility"`
	MatchLevel              string  `json:"match_level"`

	MatchedRequiredSkills  []string `json:"matched_required_skills"`
	MatchedPreferredSkills []string `json:"matched_preferred_skills"`
	MissingRequiredSkills  []string `json:"missing_required_skills"`
	MissingPreferredSkills []string `json:"missing_preferred_skills"`

	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}
