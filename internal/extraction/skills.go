package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// SkillsExtractor finds technical and soft skills
type SkillsExtractor struct {
	technical SkillSource
	soft      SkillSource
}

// NewSkillsExtractor builds a skills extractor from a technical and a soft skill source
func NewSkillsExtractor(technical, soft SkillSource) *SkillsExtractor {
	return &SkillsExtractor{technical: technical, soft: soft}
}

// Name implements Extractor
func (e *SkillsExtractor) Name() string { return NameSkills }

// Extract implements Extractor
func (e *SkillsExtractor) Extract(text string) (*types.PartialProfile, error) {
	if err := checkText(NameSkills, text); err != nil {
		return nil, err
	}

	analysis := &types.SkillsAnalysis{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		SkillCategories: map[string][]string{},
		SkillFrequency:  map[string]int{},
	}

	technical := make(map[string]bool)
	if e.technical != nil {
		for _, hit := range e.technical.Find(text) {
			technical[strings.ToLower(hit.Skill)] = true
			analysis.TechnicalSkills = append(analysis.TechnicalSkills, hit.Skill)
			analysis.SkillFrequency[hit.Skill] = hit.Count
			if hit.Category != "" {
				analysis.SkillCategories[hit.Category] = append(analysis.SkillCategories[hit.Category], hit.Skill)
			}
		}
	}

	if e.soft != nil {
		for _, hit := range e.soft.Find(text) {
			// A term known as a technical skill is never also reported as soft
			if technical[strings.ToLower(hit.Skill)] {
				continue
			}
			analysis.SoftSkills = append(analysis.SoftSkills, hit.Skill)
			analysis.SkillFrequency[hit.Skill] = hit.Count
		}
	}

	sort.Strings(analysis.TechnicalSkills)
	sort.Strings(analysis.SoftSkills)
	for _, skills := range analysis.SkillCategories {
		sort.Strings(skills)
	}
	analysis.TotalSkillsFound = len(analysis.TechnicalSkills) + len(analysis.SoftSkills)

	return &types.PartialProfile{Source: NameSkills, Skills: analysis}, nil
}
