package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/cv-analyzer/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?(?:\(\d{1,4}\)[\s.-]?)?\d{2,4}(?:[\s.-]?\d{2,4}){2,3}`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`)
	gitHubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+`)
	locationLabel   = regexp.MustCompile(`(?im)^\s*(?:location|address|based in)\s*:\s*([^\n|•]+)`)
	cityPattern     = regexp.MustCompile(`^[A-Z][A-Za-z.'-]+(?: [A-Z][A-Za-z.'-]+)*, ?(?:[A-Z]{2}|[A-Z][A-Za-z.'-]+(?: [A-Z][A-Za-z.'-]+)*)$`)
	headerSplit     = regexp.MustCompile(`\s*[|•·]\s*`)
)

const headerLines = 8

// ContactExtractor finds personal details in the top of a CV
type ContactExtractor struct{}

// NewContactExtractor creates a contact extractor
func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{}
}

// Name implements Extractor
func (e *ContactExtractor) Name() string { return NameContact }

// Extract implements Extractor
func (e *ContactExtractor) Extract(text string) (*types.PartialProfile, error) {
	if err := checkText(NameContact, text); err != nil {
		return nil, err
	}

	info := &types.PersonalInfo{
		Email:    emailPattern.FindString(text),
		Phone:    findPhone(text),
		LinkedIn: linkedInPattern.FindString(text),
		GitHub:   gitHubPattern.FindString(text),
	}

	header := topLines(text, headerLines)
	info.Name = findName(header)
	info.Location = findLocation(text, header)

	return &types.PartialProfile{Source: NameContact, PersonalInfo: info}, nil
}

func topLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}

func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		// Shorter runs are dates or year ranges
		if digits >= 9 && digits <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// findName picks the first header line that looks like a personal name
func findName(header []string) string {
	for _, line := range header {
		if _, heading := headingName(line); heading {
			continue
		}
		first := headerSplit.Split(line, -1)[0]
		if looksLikeName(first) {
			return first
		}
	}
	return ""
}

func looksLikeName(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		for i, r := range w {
			switch {
			case i == 0 && !unicode.IsUpper(r):
				return false
			case !unicode.IsLetter(r) && r != '.' && r != '\'' && r != '-':
				return false
			}
		}
	}
	return true
}

func findLocation(text string, header []string) string {
	if m := locationLabel.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, line := range header {
		for _, part := range headerSplit.Split(line, -1) {
			part = strings.TrimSpace(part)
			if cityPattern.MatchString(part) {
				return part
			}
		}
	}
	return ""
}
