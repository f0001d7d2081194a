// Package scoring computes the overall CV score from an assembled profile.
package scoring

import (
	"math"

	"github.com/jonathan/cv-analyzer/internal/reference"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Engine scores profiles. It is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg Config
	ref reference.Provider
}

// NewEngine validates cfg and creates an engine. ref may be nil, in which case no
// percentile is reported and education gets no institution boost.
func NewEngine(cfg Config, ref reference.Provider) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, ref: ref}, nil
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Score computes the overall score. It never fails; the all-empty profile scores at the floor.
func (e *Engine) Score(profile *types.CVProfile) types.OverallScore {
	if profile == nil {
		profile = &types.CVProfile{}
	}

	var dist *reference.Distribution
	var institutions *reference.InstitutionRanking
	if e.ref != nil {
		dist = e.ref.Distribution()
		institutions = e.ref.Institutions()
	}

	components := map[string]float64{
		types.ComponentSkills:     round2(e.skillsScore(profile)),
		types.ComponentExperience: round2(e.experienceScore(profile)),
		types.ComponentEducation:  round2(e.educationScore(profile, institutions)),
		types.ComponentQuality:    round2(e.qualityScore(profile)),
	}

	overall, breakdown := e.combine(components)

	score := types.OverallScore{
		OverallScore:    overall,
		ComponentScores: components,
		ScoreGrade:      GradeFor(overall),
		Breakdown:       breakdown,
	}
	score.Strengths, score.ImprovementAreas, score.Recommendations = e.feedback(components, overall)
	if p, ok := dist.Percentile(overall); ok {
		score.PercentileRank = &p
	}
	return score
}

// Overall recomputes the overall score from component scores alone
func (e *Engine) Overall(components map[string]float64) float64 {
	overall, _ := e.combine(components)
	return overall
}

func (e *Engine) combine(components map[string]float64) (float64, []types.ComponentBreakdown) {
	weights := e.weightsByComponent()
	breakdown := make([]types.ComponentBreakdown, 0, len(types.Components))
	total := 0.0
	for _, name := range types.Components {
		weighted := components[name] * weights[name]
		total += weighted
		breakdown = append(breakdown, types.ComponentBreakdown{
			Component:     name,
			RawScore:      components[name],
			Weight:        weights[name],
			WeightedScore: round2(weighted),
		})
	}
	return round2(clamp(total)), breakdown
}

func (e *Engine) weightsByComponent() map[string]float64 {
	w := e.cfg.Weights
	return map[string]float64{
		types.ComponentSkills:     w.Skills,
		types.ComponentExperience: w.Experience,
		types.ComponentEducation:  w.Education,
		types.ComponentQuality:    w.Quality,
	}
}

// skillsScore rewards skill count with diminishing returns and category diversity
func (e *Engine) skillsScore(p *types.CVProfile) float64 {
	s := e.cfg.Skills
	n := float64(p.TotalSkillsFound)
	if total := len(p.TechnicalSkills) + len(p.SoftSkills); float64(total) > n {
		n = float64(total)
	}
	categories := 0
	for _, skills := range p.SkillCategories {
		if len(skills) > 0 {
			categories++
		}
	}

	score := s.MaxCountPoints * (1 - math.Exp(-3*n/s.Saturation))
	score += s.CategoryPoints * float64(min(categories, s.DiversityThreshold))
	if categories >= s.DiversityThreshold {
		score += s.DiversityBonus
	}
	return clamp(score)
}

// experienceScore blends a saturating years curve with the keyword quality score
func (e *Engine) experienceScore(p *types.CVProfile) float64 {
	x := e.cfg.Experience
	years := math.Max(0, p.TotalYearsExperience)
	curve := 100 * (1 - math.Exp(-years/x.YearsScale))
	return clamp(x.YearsWeight*curve + (1-x.YearsWeight)*clamp(p.ExperienceQualityScore))
}

// educationScore is the level score plus a boost for a ranked institution
func (e *Engine) educationScore(p *types.CVProfile, institutions *reference.InstitutionRanking) float64 {
	base := clamp(p.EducationLevelScore)
	rank, ok := institutions.BestRank(p.Institutions)
	if !ok {
		return base
	}
	b := e.cfg.Education
	switch {
	case rank <= 10:
		base += b.Top10Boost
	case rank <= 50:
		base += b.Top50Boost
	case rank <= 200:
		base += b.Top200Boost
	}
	return clamp(base)
}

// qualityScore penalises missing contact details and sparse experience descriptions
func (e *Engine) qualityScore(p *types.CVProfile) float64 {
	q := e.cfg.Quality
	score := 100 - q.MissingFieldPenalty*float64(p.PersonalInfo.MissingCoreFields())
	if short := q.MinKeywords - len(p.ExperienceKeywords); short > 0 {
		score -= q.KeywordPenalty * float64(short) / float64(q.MinKeywords)
	}
	return clamp(score)
}

// GradeFor maps an overall score to its grade. Lower bounds are inclusive.
func GradeFor(score float64) types.ScoreGrade {
	switch {
	case score >= 90:
		return types.GradeExcellent
	case score >= 80:
		return types.GradeVeryGood
	case score >= 65:
		return types.GradeGood
	case score >= 50:
		return types.GradeFair
	default:
		return types.GradePoor
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
