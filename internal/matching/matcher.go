// Package matching compares an assembled CV profile against caller-supplied job requirements.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-analyzer/internal/parsing"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Match levels derived from overall compatibility
const (
	LevelExcellent = "Excellent Match"
	LevelVeryGood  = "Very Good Match"
	LevelGood      = "Good Match"
	LevelFair      = "Fair Match"
	LevelPoor      = "Poor Match"
)

// Matcher scores profiles against job requirements. It is immutable and safe for concurrent use.
type Matcher struct {
	cfg Config
}

// NewMatcher validates cfg and returns a Matcher
func NewMatcher(cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg}, nil
}

// Config returns the matcher configuration
func (m *Matcher) Config() Config {
	return m.cfg
}

// ValidateRequirements rejects negative minimum experience and blank skill names
func ValidateRequirements(req *types.JobRequirements) error {
	if req == nil {
		return &RequirementsError{Message: "requirements are nil"}
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return &RequirementsError{Message: "field validation failed", Cause: err}
	}
	for _, s := range append(append([]string{}, req.RequiredSkills...), req.PreferredSkills...) {
		if strings.TrimSpace(s) == "" {
			return &RequirementsError{Message: "skill names must not be blank"}
		}
	}
	return nil
}

// Match computes the compatibility of profile with req. A nil profile is treated as empty.
func (m *Matcher) Match(profile *types.CVProfile, req *types.JobRequirements) types.JobCompatibility {
	if profile == nil {
		profile = &types.CVProfile{}
	}
	if req == nil {
		req = &types.JobRequirements{}
	}

	have := make(map[string]bool)
	for _, s := range profile.AllSkills() {
		have[parsing.CanonicalKey(s)] = true
	}

	required := parsing.NormalizeSkills(req.RequiredSkills)
	preferred := parsing.NormalizeSkills(req.PreferredSkills)
	matchedReq, missingReq := partition(required, have)
	matchedPref, missingPref := partition(preferred, have)

	skills := m.skillCompatibility(len(required), len(matchedReq), len(preferred), len(matchedPref))
	experience := m.experienceCompatibility(profile.TotalYearsExperience, req.MinimumExperience)
	education := round2(clamp(profile.EducationLevelScore))

	w := m.cfg.Weights
	overall := round2(w.Skills*skills + w.Experience*experience + w.Education*education)

	result := types.JobCompatibility{
		OverallCompatibility:    overall,
		SkillCompatibility:      skills,
		ExperienceCompatibility: experience,
		EducationCompatibility:  education,
		MatchLevel:              LevelFor(overall),
		MatchedRequiredSkills:   matchedReq,
		MatchedPreferredSkills:  matchedPref,
		MissingRequiredSkills:   missingReq,
		MissingPreferredSkills:  missingPref,
		Strengths:               []string{},
		Weaknesses:              []string{},
		Recommendations:         []string{},
	}

	gap := gaps{
		missingRequired:  missingReq,
		missingPreferred: missingPref,
		years:            profile.TotalYearsExperience,
		minimum:          req.MinimumExperience,
		educationLevel:   profile.EducationLevel,
	}
	m.assess(&result, gap)
	return result
}

// gaps carries the facts the rendered sentences are parameterised with
type gaps struct {
	missingRequired  []string
	missingPreferred []string
	years            float64
	minimum          float64
	educationLevel   string
}

// assess renders strengths, weaknesses and one recommendation per weakness, always in
// the order skills, experience, education.
func (m *Matcher) assess(r *types.JobCompatibility, g gaps) {
	strong := func(v float64) bool { return v >= m.cfg.StrengthThreshold }
	weak := func(v float64) bool { return v < m.cfg.WeaknessThreshold }

	switch {
	case strong(r.SkillCompatibility):
		r.Strengths = append(r.Strengths,
			fmt.Sprintf("Strong skill alignment with the role (%.0f%% skill compatibility)", r.SkillCompatibility))
	case weak(r.SkillCompatibility):
		missing := g.missingRequired
		label := "required"
		if len(missing) == 0 {
			missing = g.missingPreferred
			label = "preferred"
		}
		if len(missing) == 0 {
			r.Weaknesses = append(r.Weaknesses, "Limited overlap with the role's skill requirements")
			r.Recommendations = append(r.Recommendations, "Highlight skills relevant to the role more explicitly")
		} else {
			list := m.listSkills(missing)
			r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Missing %s skills: %s", label, list))
			r.Recommendations = append(r.Recommendations, fmt.Sprintf("Priority: learn %s to meet the %s skills", list, label))
		}
	}

	switch {
	case strong(r.ExperienceCompatibility):
		if g.minimum > 0 {
			r.Strengths = append(r.Strengths,
				fmt.Sprintf("Experience exceeds the requirement (%.1f years vs %.1f required)", g.years, g.minimum))
		} else {
			r.Strengths = append(r.Strengths, fmt.Sprintf("Solid professional experience (%.1f years)", g.years))
		}
	case weak(r.ExperienceCompatibility):
		shortfall := math.Max(0, g.minimum-g.years)
		r.Weaknesses = append(r.Weaknesses,
			fmt.Sprintf("Experience below the requirement (%.1f years vs %.1f required)", g.years, g.minimum))
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Gain %.1f more years of relevant experience or highlight transferable work", shortfall))
	}

	switch {
	case strong(r.EducationCompatibility):
		r.Strengths = append(r.Strengths, fmt.Sprintf("Strong educational background (%s)", g.educationLevel))
	case weak(r.EducationCompatibility):
		level := educationLabel(g.educationLevel)
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("Limited formal education (%s)", level))
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("Consider additional certifications or formal education beyond the current level (%s)", level))
	}
}

// educationLabel names the detected level; an empty level and the "None" bucket both read as no degree.
func educationLabel(level string) string {
	if level == "" || level == "None" {
		return "None found"
	}
	return level
}

func (m *Matcher) listSkills(skills []string) string {
	if len(skills) <= m.cfg.MaxListedSkills {
		return strings.Join(skills, ", ")
	}
	shown := strings.Join(skills[:m.cfg.MaxListedSkills], ", ")
	return fmt.Sprintf("%s and %d more", shown, len(skills)-m.cfg.MaxListedSkills)
}

func (m *Matcher) skillCompatibility(required, matchedRequired, preferred, matchedPreferred int) float64 {
	p := m.cfg.Skills
	switch {
	case required == 0 && preferred == 0:
		return round2(p.NeutralScore)
	case preferred == 0:
		return round2(100 * fraction(matchedRequired, required))
	case required == 0:
		return round2(100 * fraction(matchedPreferred, preferred))
	}
	return round2(100 * (p.RequiredWeight*fraction(matchedRequired, required) +
		p.PreferredWeight*fraction(matchedPreferred, preferred)))
}

func (m *Matcher) experienceCompatibility(years, minimum float64) float64 {
	p := m.cfg.Experience
	if years >= minimum {
		return round2(clamp(p.Base + math.Min(p.MaxBonus, p.BonusPerYear*(years-minimum))))
	}
	return round2(clamp(p.Base - p.PenaltyPerYear*(minimum-years)))
}

// LevelFor maps an overall compatibility score to a match level
func LevelFor(overall float64) string {
	switch {
	case overall >= 90:
		return LevelExcellent
	case overall >= 80:
		return LevelVeryGood
	case overall >= 65:
		return LevelGood
	case overall >= 50:
		return LevelFair
	default:
		return LevelPoor
	}
}

// partition splits wanted into skills present in have and skills missing from it,
// preserving the order of wanted.
func partition(wanted []string, have map[string]bool) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, s := range wanted {
		if have[parsing.CanonicalKey(s)] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func fraction(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
