package extraction

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-analyzer/internal/types"
)

const monthNames = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// dateRangePattern captures: 1 start month name, 2 start month number, 3 start year,
// 4 end month name, 5 end month number, 6 end year, 7 open end.
var dateRangePattern = regexp.MustCompile(`(?i)\b(?:(` + monthNames + `)[a-z]*\.?\s+|(\d{1,2})/)?((?:19|20)\d{2})` +
	`\s*(?:-|–|—|to|until|till)\s*` +
	`(?:(?:(` + monthNames + `)[a-z]*\.?\s+|(\d{1,2})/)?((?:19|20)\d{2})|(present|current|now|today|date))\b`)

var yearsStatementPattern = regexp.MustCompile(`(?i)\b(?:over\s+|more\s+than\s+)?(\d{1,2}(?:\.\d)?)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+|industry\s+|work\s+|relevant\s+)?experience`)

var actionVerbs = []string{
	"developed", "implemented", "designed", "created", "built", "managed",
	"led", "supervised", "coordinated", "collaborated", "achieved", "delivered",
	"improved", "optimized", "increased", "reduced", "streamlined", "automated",
	"maintained", "supported", "troubleshooted", "debugged", "tested", "deployed",
	"integrated", "migrated", "refactored", "architected", "planned", "executed",
	"analyzed", "researched", "evaluated", "recommended", "presented", "trained",
	"mentored", "recruited", "onboarded", "documented", "standardized",
}

var actionVerbPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(actionVerbs, "|") + `)\b`)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ExperienceExtractor estimates total experience from employment date ranges and
// rates the experience description by its density of action verbs
type ExperienceExtractor struct {
	pointsPerVerbYear float64
	now               func() time.Time
}

// NewExperienceExtractor creates an experience extractor. now resolves open-ended
// ranges such as "2020 - Present".
func NewExperienceExtractor(pointsPerVerbYear float64, now func() time.Time) *ExperienceExtractor {
	if now == nil {
		now = time.Now
	}
	return &ExperienceExtractor{pointsPerVerbYear: pointsPerVerbYear, now: now}
}

// Name implements Extractor
func (e *ExperienceExtractor) Name() string { return NameExperience }

// Extract implements Extractor
func (e *ExperienceExtractor) Extract(text string) (*types.PartialProfile, error) {
	if err := checkText(NameExperience, text); err != nil {
		return nil, err
	}

	scope := experienceScope(text)
	tenures := types.MergeIntervals(FindTenures(scope, e.now()))

	years := float64(types.TotalMonths(tenures)) / 12
	if len(tenures) == 0 {
		years = statedYears(scope)
	}
	years = round2(years)

	keywords, occurrences := findActionVerbs(scope)

	quality := 0.0
	if occurrences > 0 {
		quality = math.Min(100, float64(occurrences)/math.Max(years, 1)*e.pointsPerVerbYear)
	}

	return &types.PartialProfile{
		Source: NameExperience,
		Experience: &types.ExperienceAnalysis{
			TotalYears:             years,
			Tenures:                tenures,
			Keywords:               keywords,
			KeywordOccurrences:     occurrences,
			ExperienceQualityScore: round2(quality),
			Level:                  LevelForYears(years),
		},
	}, nil
}

// LevelForYears maps total years of experience to an experience level
func LevelForYears(years float64) types.ExperienceLevel {
	switch {
	case years < 2:
		return types.LevelEntry
	case years < 5:
		return types.LevelMid
	case years <= 10:
		return types.LevelSenior
	default:
		return types.LevelLead
	}
}

// experienceScope is the experience section when one exists. Otherwise it is the
// whole text minus the education section, so study periods are not counted as work.
func experienceScope(text string) string {
	sections := SplitSections(text)
	if sections.Has(SectionExperience) {
		return sections.Text(SectionExperience)
	}
	return sections.Except(SectionEducation)
}

// FindTenures returns every date range in text as a month interval. Year-only dates
// start in January, so "2018 - 2021" covers three years, while "2018 - 2018" covers
// the whole year. An end with a month includes that month: "Jan 2018 - Dec 2018" is
// twelve months. Open ends resolve to the month of now.
func FindTenures(text string, now time.Time) []types.Interval {
	var tenures []types.Interval
	current := absMonth(now.Year(), int(now.Month()))

	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		startYear, _ := strconv.Atoi(m[3])
		startMonth, ok := parseMonth(m[1], m[2])
		if !ok {
			continue
		}
		start := absMonth(startYear, startMonth)

		var end int
		if m[7] != "" {
			end = current
		} else {
			endYear, _ := strconv.Atoi(m[6])
			endMonth, ok := parseMonth(m[4], m[5])
			if !ok {
				continue
			}
			switch {
			case m[4] != "" || m[5] != "":
				// a named end month is worked in full
				end = absMonth(endYear, endMonth) + 1
			case endYear == startYear:
				end = absMonth(endYear+1, 1)
			default:
				end = absMonth(endYear, endMonth)
			}
		}
		if end > current {
			end = current
		}
		if end <= start {
			continue
		}
		tenures = append(tenures, types.Interval{StartMonth: start, EndMonth: end})
	}
	return tenures
}

func parseMonth(name, number string) (int, bool) {
	if name != "" {
		return monthIndex[strings.ToLower(name[:3])], true
	}
	if number != "" {
		n, err := strconv.Atoi(number)
		if err != nil || n < 1 || n > 12 {
			return 0, false
		}
		return n, true
	}
	return 1, true
}

func absMonth(year, month int) int {
	return year*12 + month - 1
}

func statedYears(text string) float64 {
	best := 0.0
	for _, m := range yearsStatementPattern.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > best {
			best = v
		}
	}
	return best
}

// findActionVerbs returns the distinct verbs in order of first appearance and the
// total number of occurrences
func findActionVerbs(text string) ([]string, int) {
	keywords := []string{}
	seen := make(map[string]bool)
	matches := actionVerbPattern.FindAllString(text, -1)
	for _, m := range matches {
		verb := strings.ToLower(m)
		if !seen[verb] {
			seen[verb] = true
			keywords = append(keywords, verb)
		}
	}
	return keywords, len(matches)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
