// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// shorten truncates s to at most n runes, ending in "..." when cut
func shorten(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items under a heading
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintProfile outputs a human-readable summary of an assembled CV profile.
func (p *Printer) PrintProfile(profile *types.CVProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	info := profile.PersonalInfo
	if info.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", info.Name))
	}
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", info.Email))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", info.Location))
	}
	sb.WriteString(fmt.Sprintf("Experience: %.1f years (%s)\n", profile.TotalYearsExperience, profile.ExperienceLevel))
	if profile.EducationLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.EducationLevel))
	}
	sb.WriteString(fmt.Sprintf("Skills:     %d found\n\n", profile.TotalSkillsFound))

	writeList(&sb, "Technical skills", profile.TechnicalSkills)
	writeList(&sb, "Soft skills", profile.SoftSkills)
	writeList(&sb, "Degrees", profile.Degrees)

	p.printBox("CV PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the overall score with its per-component breakdown.
func (p *Printer) PrintScore(score *types.OverallScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f (%s)\n", score.OverallScore, score.ScoreGrade))
	if score.PercentileRank != nil {
		sb.WriteString(fmt.Sprintf("Percentile: %d\n", *score.PercentileRank))
	}
	sb.WriteString("\n")
	for _, b := range score.Breakdown {
		sb.WriteString(fmt.Sprintf("%-11s %6.2f × %.2f = %6.2f\n", b.Component, b.RawScore, b.Weight, b.WeightedScore))
	}
	if len(score.Strengths)+len(score.ImprovementAreas)+len(score.Recommendations) > 0 {
		sb.WriteString("\n")
	}
	writeList(&sb, "Strengths", score.Strengths)
	writeList(&sb, "Improvement areas", score.ImprovementAreas)
	writeList(&sb, "Recommendations", score.Recommendations)

	p.printBox("OVERALL SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompatibility outputs the job compatibility report.
func (p *Printer) PrintCompatibility(c *types.JobCompatibility) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f (%s)\n", c.OverallCompatibility, c.MatchLevel))
	sb.WriteString(fmt.Sprintf("Skills:     %.2f\n", c.SkillCompatibility))
	sb.WriteString(fmt.Sprintf("Experience: %.2f\n", c.ExperienceCompatibility))
	sb.WriteString(fmt.Sprintf("Education:  %.2f\n\n", c.EducationCompatibility))

	writeList(&sb, "Strengths", c.Strengths)
	writeList(&sb, "Weaknesses", c.Weaknesses)
	writeList(&sb, "Recommendations", c.Recommendations)

	p.printBox("JOB COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs every section of one analysis result, followed by any warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	fmt.Fprintf(p.out, "%s (%.3fs)\n", result.Filename, result.ProcessingTimeSeconds)
	p.PrintProfile(result.Profile)
	p.PrintScore(result.Score)
	p.PrintCompatibility(result.JobCompatibility)
	for _, w := range result.Warnings {
		fmt.Fprintf(p.out, "⚠ %s\n", w)
	}
}

// PrintBatch outputs a one-line summary per document and the batch totals.
func (p *Printer) PrintBatch(batch *types.BatchResult) {
	if batch == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d  Completed: %d  Failed: %d  (%.2fs)\n\n",
		batch.Total, batch.Completed, batch.Failed, batch.ProcessingTimeSeconds))
	for _, item := range batch.Results {
		switch {
		case item.Result != nil && item.Result.Score != nil:
			sb.WriteString(fmt.Sprintf("✓ %s  %.2f %s\n", item.Result.Filename,
				item.Result.Score.OverallScore, item.Result.Score.ScoreGrade))
		case item.Failure != nil:
			sb.WriteString(fmt.Sprintf("✗ %s  %s\n", item.Failure.Filename, item.Failure.ErrorKind))
		}
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}
