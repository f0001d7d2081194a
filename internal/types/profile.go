// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"sort"
)

// ExperienceLevel buckets total years of experience
type ExperienceLevel string

// Experience levels
const (
	LevelEntry  ExperienceLevel = "Entry"
	LevelMid    ExperienceLevel = "Mid"
	LevelSenior ExperienceLevel = "Senior"
	LevelLead   ExperienceLevel = "Lead"
)

// PersonalInfo holds best-effort contact details found in a CV
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// MissingCoreFields returns how many of name, email, phone and location are empty.
func (p PersonalInfo) MissingCoreFields() int {
	missing := 0
	for _, v := range []string{p.Name, p.Email, p.Phone, p.Location} {
		if v == "" {
			missing++
		}
	}
	return missing
}

// Interval is a tenure period expressed in absolute months (year*12 + month-1), end exclusive.
type Interval struct {
	StartMonth int `json:"start_month"`
	EndMonth   int `json:"end_month"`
}

// Months returns the length of the interval in months
func (i Interval) Months() int {
	if i.EndMonth <= i.StartMonth {
		return 0
	}
	return i.EndMonth - i.StartMonth
}

// MergeIntervals merges overlapping or touching intervals and returns them sorted by start.
// Empty intervals are dropped.
func MergeIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Months() > 0 {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartMonth != sorted[j].StartMonth {
			return sorted[i].StartMonth < sorted[j].StartMonth
		}
		return sorted[i].EndMonth < sorted[j].EndMonth
	})

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		last := len(merged) - 1
		if last >= 0 && iv.StartMonth <= merged[last].EndMonth {
			if iv.EndMonth > merged[last].EndMonth {
				merged[last].EndMonth = iv.EndMonth
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// TotalMonths returns the months covered by the union of the intervals
func TotalMonths(intervals []Interval) int {
	total := 0
	for _, iv := range MergeIntervals(intervals) {
		total += iv.Months()
	}
	return total
}

// SkillsAnalysis is the skills extractor output
type SkillsAnalysis struct {
	TechnicalSkills  []string            `json:"technical_skills"`
	SoftSkills       []string            `json:"soft_skills"`
	SkillCategories  map[string][]string `json:"skill_categories"`
	SkillFrequency   map[string]int      `json:"skill_frequency"`
	TotalSkillsFound int                 `json:"total_skills_found"`
}

// ExperienceAnalysis is the experience extractor output
type ExperienceAnalysis struct {
	TotalYears             float64         `json:"total_years"`
	Tenures                []Interval      `json:"tenures"`
	Keywords               []string        `json:"keywords_found"`
	KeywordOccurrences     int             `json:"keyword_occurrences"`
	ExperienceQualityScore float64         `json:"experience_quality_score"`
	Level                  ExperienceLevel `json:"experience_level"`
}

// EducationAnalysis is the education extractor output
type EducationAnalysis struct {
	Degrees             []string `json:"degrees"`
	Institutions        []string `json:"institutions"`
	EducationLevel      string   `json:"education_level"`
	EducationLevelScore float64  `json:"education_level_score"`
}

// PartialProfile is what a single extractor contributes. Only the dimension the
// extractor owns is non-nil.
type PartialProfile struct {
	Source       string              `json:"source"`
	PersonalInfo *PersonalInfo       `json:"personal_info,omitempty"`
	Skills       *SkillsAnalysis     `json:"skills,omitempty"`
	Experience   *ExperienceAnalysis `json:"experience,omitempty"`
	Education    *EducationAnalysis  `json:"education,omitempty"`
}

// CVProfile is the unified structured representation of one CV
type CVProfile struct {
	PersonalInfo PersonalInfo `json:"personal_info"`

	TechnicalSkills  []string            `json:"technical_skills"`
	SoftSkills       []string            `json:"soft_skills"`
	SkillCategories  map[string][]string `json:"skill_categories"`
	SkillFrequency   map[string]int      `json:"skill_frequency,omitempty"`
	TotalSkillsFound int                 `json:"total_skills_found"`

	TotalYearsExperience   float64         `json:"total_years_experience"`
	Tenures                []Interval      `json:"tenures,omitempty"`
	ExperienceKeywords     []string        `json:"experience_keywords"`
	ExperienceQualityScore float64         `json:"experience_quality_score"`
	ExperienceLevel        ExperienceLevel `json:"experience_level"`

	Degrees             []string `json:"degrees"`
	Institutions        []string `json:"institutions"`
	EducationLevel      string   `json:"education_level,omitempty"`
	EducationLevelScore float64  `json:"education_level_score"`
}

// AllSkills returns technical and soft skills together, technical first.
func (p *CVProfile) AllSkills() []string {
	all := make([]string, 0, len(p.TechnicalSkills)+len(p.SoftSkills))
	all = append(all, p.TechnicalSkills...)
	all = append(all, p.SoftSkills...)
	return all
}

// CheckInvariants verifies that every categorised skill is a known skill and that
// numeric fields are in range.
func (p *CVProfile) CheckInvariants() error {
	known := make(map[string]struct{}, len(p.TechnicalSkills)+len(p.SoftSkills))
	for _, s := range p.AllSkills() {
		known[s] = struct{}{}
	}
	for category, skills := range p.SkillCategories {
		for _, s := range skills {
			if _, ok := known[s]; !ok {
				return fmt.Errorf("skill %q in category %q is not in technical or soft skills", s, category)
			}
		}
	}
	if p.TotalYearsExperience < 0 {
		return fmt.Errorf("total_years_experience must be non-negative, got %v", p.TotalYearsExperience)
	}
	return nil
}
