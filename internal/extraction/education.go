package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// Education levels and their scores
const (
	EducationPhD       = "PhD"
	EducationMaster    = "Master"
	EducationBachelor  = "Bachelor"
	EducationAssociate = "Associate"
	EducationDiploma   = "Diploma"
	EducationNone      = "None"
)

// EducationLevelScores is the fixed level table used for education_level_score
var EducationLevelScores = map[string]float64{
	EducationPhD:       100,
	EducationMaster:    90,
	EducationBachelor:  80,
	EducationAssociate: 60,
	EducationDiploma:   50,
	EducationNone:      30,
}

type degreePattern struct {
	level string
	re    *regexp.Regexp
}

// Patterns are ordered from the highest level down. Two-letter abbreviations are
// matched case-sensitively so that "ms" or "ba" inside prose do not count.
var degreePatterns = []degreePattern{
	{EducationPhD, regexp.MustCompile(`(?i)\b(?:ph\.?\s?d|d\.?phil|doctorate|doctoral|doctor of [a-z]+)\b`)},
	{EducationMaster, regexp.MustCompile(`(?i)\b(?:master(?:'s|s)?|mba|m\.?sc|m\.?eng|m\.?phil)\b`)},
	{EducationMaster, regexp.MustCompile(`\b(?:MS|MA|M\.S\.|M\.A\.)(?:\s|,|$)`)},
	{EducationBachelor, regexp.MustCompile(`(?i)\b(?:bachelor(?:'s|s)?|b\.?sc|b\.?eng|b\.?tech|undergraduate degree)\b`)},
	{EducationBachelor, regexp.MustCompile(`\b(?:BS|BA|B\.S\.|B\.A\.)(?:\s|,|$)`)},
	{EducationAssociate, regexp.MustCompile(`(?i)\bassociate(?:'s)?\s+(?:degree|of)\b`)},
	{EducationDiploma, regexp.MustCompile(`(?i)\b(?:diploma|certificate)\b`)},
}

// Words around a match that mean it is not a degree (MS Office, Scrum Master)
var (
	falseFriendsAfter  = []string{"office", "word", "excel", "access", "teams", "sql", "project"}
	falseFriendsBefore = []string{"scrum", "quiz", "web", "certified"}
)

var institutionPattern = regexp.MustCompile(
	`(?:\b[A-Z][A-Za-z.&'-]*[ \t]+(?:(?:of|and|for|the|[A-Z][A-Za-z.&'-]*)[ \t]+){0,4})?` +
		`(?:University|College|Institute|Polytechnic|Academy)\b` +
		`(?:[ \t]+(?:of|for)(?:[ \t]+(?:the|and|[A-Z][A-Za-z.&'-]*)){1,5})?`)

var segmentSeparator = regexp.MustCompile(`\s*(?:[,|;•·]|\s[-–—]\s)\s*`)

// EducationExtractor finds degrees and institutions
type EducationExtractor struct{}

// NewEducationExtractor creates an education extractor
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Name implements Extractor
func (e *EducationExtractor) Name() string { return NameEducation }

type degreeMatch struct {
	level string
	pos   int
	text  string
}

// Extract implements Extractor
func (e *EducationExtractor) Extract(text string) (*types.PartialProfile, error) {
	if err := checkText(NameEducation, text); err != nil {
		return nil, err
	}

	sections := SplitSections(text)
	scope := text
	if sections.Has(SectionEducation) {
		scope = sections.Text(SectionEducation)
	}

	level := EducationNone
	var matches []degreeMatch
	for _, p := range degreePatterns {
		for _, loc := range p.re.FindAllStringIndex(scope, -1) {
			if isFalseFriend(scope, loc[0], loc[1]) {
				continue
			}
			if EducationLevelScores[p.level] > EducationLevelScores[level] {
				level = p.level
			}
			matches = append(matches, degreeMatch{level: p.level, pos: loc[0], text: degreeLine(scope, loc[0])})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	degrees := []string{}
	seen := make(map[string]bool)
	for _, m := range matches {
		key := strings.ToLower(m.text)
		if m.text == "" || seen[key] {
			continue
		}
		seen[key] = true
		degrees = append(degrees, m.text)
	}

	institutions := []string{}
	seenInst := make(map[string]bool)
	for _, inst := range institutionPattern.FindAllString(scope, -1) {
		inst = strings.TrimSpace(inst)
		key := strings.ToLower(inst)
		if seenInst[key] {
			continue
		}
		seenInst[key] = true
		institutions = append(institutions, inst)
	}

	return &types.PartialProfile{
		Source: NameEducation,
		Education: &types.EducationAnalysis{
			Degrees:             degrees,
			Institutions:        institutions,
			EducationLevel:      level,
			EducationLevelScore: EducationLevelScores[level],
		},
	}, nil
}

func isFalseFriend(text string, start, end int) bool {
	after := strings.ToLower(strings.TrimSpace(text[end:]))
	for _, w := range falseFriendsAfter {
		if strings.HasPrefix(after, w) {
			return true
		}
	}
	before := strings.Fields(strings.ToLower(text[:start]))
	if len(before) == 0 {
		return false
	}
	last := before[len(before)-1]
	for _, w := range falseFriendsBefore {
		if last == w {
			return true
		}
	}
	return false
}

// degreeLine returns the segment of the line around pos that mentions the degree,
// e.g. "Bachelor of Science in Computer Science" out of
// "Bachelor of Science in Computer Science, MIT, 2014 - 2018".
func degreeLine(text string, pos int) string {
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[pos:], '\n'); i >= 0 {
		lineEnd = pos + i
	}
	line := text[lineStart:lineEnd]
	offset := pos - lineStart

	start := 0
	for _, loc := range segmentSeparator.FindAllStringIndex(line, -1) {
		if loc[1] <= offset {
			start = loc[1]
			continue
		}
		if loc[0] >= offset {
			return truncate(strings.TrimSpace(line[start:loc[0]]), 120)
		}
	}
	return truncate(strings.TrimSpace(line[start:]), 120)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
