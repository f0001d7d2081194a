// Package profile merges extractor outputs into a single CV profile.
package profile

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Assemble merges partial profiles, in the order given, into one CVProfile.
//
// Skill sets are unioned. A term reported as both a technical and a soft skill is kept
// as technical only, and every categorised skill is guaranteed to be a technical skill.
// Ordered lists concatenate with duplicates removed. Scalar scores take the maximum.
// Personal details take the first non-empty value per field.
func Assemble(partials ...*types.PartialProfile) *types.CVProfile {
	p := &types.CVProfile{
		TechnicalSkills:    []string{},
		SoftSkills:         []string{},
		SkillCategories:    map[string][]string{},
		SkillFrequency:     map[string]int{},
		ExperienceKeywords: []string{},
		Degrees:            []string{},
		Institutions:       []string{},
	}

	technical := newSet()
	soft := newSet()
	categories := make(map[string]*orderedSet)
	keywords := newSet()
	degrees := newSet()
	institutions := newSet()
	var tenures []types.Interval
	var statedYears float64

	for _, partial := range partials {
		if partial == nil {
			continue
		}
		if partial.PersonalInfo != nil {
			mergePersonalInfo(&p.PersonalInfo, *partial.PersonalInfo)
		}
		if s := partial.Skills; s != nil {
			technical.addAll(s.TechnicalSkills)
			soft.addAll(s.SoftSkills)
			for category, skills := range s.SkillCategories {
				if categories[category] == nil {
					categories[category] = newSet()
				}
				categories[category].addAll(skills)
				technical.addAll(skills)
			}
			for skill, count := range s.SkillFrequency {
				if count > p.SkillFrequency[skill] {
					p.SkillFrequency[skill] = count
				}
			}
		}
		if e := partial.Experience; e != nil {
			tenures = append(tenures, e.Tenures...)
			statedYears = math.Max(statedYears, e.TotalYears)
			keywords.addAll(e.Keywords)
			p.ExperienceQualityScore = math.Max(p.ExperienceQualityScore, e.ExperienceQualityScore)
		}
		if ed := partial.Education; ed != nil {
			degrees.addAll(ed.Degrees)
			institutions.addAll(ed.Institutions)
			switch {
			case ed.EducationLevelScore > p.EducationLevelScore:
				p.EducationLevel = ed.EducationLevel
				p.EducationLevelScore = ed.EducationLevelScore
			case ed.EducationLevelScore == p.EducationLevelScore && p.EducationLevel == "":
				p.EducationLevel = ed.EducationLevel
			}
		}
	}

	for _, skill := range soft.items {
		if !technical.has(skill) {
			p.SoftSkills = append(p.SoftSkills, skill)
		}
	}
	p.TechnicalSkills = append(p.TechnicalSkills, technical.items...)
	sort.Strings(p.TechnicalSkills)
	sort.Strings(p.SoftSkills)

	for category, set := range categories {
		skills := make([]string, 0, len(set.items))
		for _, skill := range set.items {
			skills = append(skills, technical.canonical(skill))
		}
		sort.Strings(skills)
		p.SkillCategories[category] = skills
	}
	p.TotalSkillsFound = len(p.TechnicalSkills) + len(p.SoftSkills)

	p.Tenures = types.MergeIntervals(tenures)
	years := float64(types.TotalMonths(p.Tenures)) / 12
	if len(p.Tenures) == 0 {
		years = statedYears
	}
	p.TotalYearsExperience = math.Round(years*100) / 100
	p.ExperienceLevel = extraction.LevelForYears(p.TotalYearsExperience)

	p.ExperienceKeywords = append(p.ExperienceKeywords, keywords.items...)
	p.Degrees = append(p.Degrees, degrees.items...)
	p.Institutions = append(p.Institutions, institutions.items...)

	return p
}

func mergePersonalInfo(dst *types.PersonalInfo, src types.PersonalInfo) {
	first := func(current *string, candidate string) {
		if *current == "" {
			*current = strings.TrimSpace(candidate)
		}
	}
	first(&dst.Name, src.Name)
	first(&dst.Email, src.Email)
	first(&dst.Phone, src.Phone)
	first(&dst.Location, src.Location)
	first(&dst.LinkedIn, src.LinkedIn)
	first(&dst.GitHub, src.GitHub)
}

// orderedSet keeps the first spelling of each case-insensitive key in insertion order
type orderedSet struct {
	items []string
	keys  map[string]string
}

func newSet() *orderedSet {
	return &orderedSet{keys: make(map[string]string)}
}

func (s *orderedSet) add(v string) {
	v = strings.TrimSpace(v)
	key := strings.ToLower(v)
	if v == "" {
		return
	}
	if _, ok := s.keys[key]; ok {
		return
	}
	s.keys[key] = v
	s.items = append(s.items, v)
}

func (s *orderedSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *orderedSet) has(v string) bool {
	_, ok := s.keys[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// canonical returns the stored spelling of v
func (s *orderedSet) canonical(v string) string {
	if stored, ok := s.keys[strings.ToLower(strings.TrimSpace(v))]; ok {
		return stored
	}
	return v
}
