package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

var componentAdvice = map[string]string{
	types.ComponentSkills:     "Expand the technical skill set and highlight existing expertise more prominently",
	types.ComponentExperience: "Emphasize achievements and quantifiable results in work experience",
	types.ComponentEducation:  "Consider additional certifications or formal training",
	types.ComponentQuality:    "Improve CV structure and completeness",
}

// feedback derives strengths, improvement areas and recommendations from the component
// scores. Entries follow types.Components order so equal inputs give equal output.
func (e *Engine) feedback(components map[string]float64, overall float64) (strengths, areas, recs []string) {
	f := e.cfg.Feedback
	strengths, areas, recs = []string{}, []string{}, []string{}

	for _, name := range types.Components {
		score := components[name]
		switch {
		case score >= f.ExcellentThreshold:
			strengths = append(strengths, fmt.Sprintf("Excellent %s profile (%.0f)", name, score))
		case score >= f.StrongThreshold:
			strengths = append(strengths, fmt.Sprintf("Strong %s background (%.0f)", name, score))
		}

		title := strings.ToUpper(name[:1]) + name[1:]
		switch {
		case score < f.DevelopmentThreshold:
			areas = append(areas, fmt.Sprintf("%s development needed (%.0f)", title, score))
		case score < f.ImprovementThreshold:
			areas = append(areas, fmt.Sprintf("%s enhancement opportunity (%.0f)", title, score))
		default:
			continue
		}
		recs = append(recs, fmt.Sprintf("%s (%s score %.0f, target %.0f)",
			componentAdvice[name], name, score, f.StrongThreshold))
	}

	if overall < f.ImprovementThreshold && len(areas) > 1 {
		recs = append(recs, fmt.Sprintf("Focus on comprehensive CV improvement across %d areas", len(areas)))
	}
	return strengths, areas, recs
}
