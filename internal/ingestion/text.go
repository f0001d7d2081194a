package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	multiSpacePattern  = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLinesPattern  = regexp.MustCompile(`\n\n\n+`)
	bulletGlyphPattern = regexp.MustCompile(`^[•·▪●◦‣∙]\s*`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, control characters are dropped, bullet glyphs become "- ",
// runs of spaces collapse and at most one blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ToValidUTF8(content, "")
	content = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, content)

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLinesPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while keeping bullets recognisable
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if bulletGlyphPattern.MatchString(trimmed) {
		trimmed = "- " + bulletGlyphPattern.ReplaceAllString(trimmed, "")
	}
	return multiSpacePattern.ReplaceAllString(trimmed, " ")
}

// CountWords counts whitespace-separated tokens that contain at least one letter or digit
func CountWords(text string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		if strings.IndexFunc(field, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) >= 0 {
			count++
		}
	}
	return count
}
