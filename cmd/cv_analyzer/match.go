package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match an existing CV profile against job requirements",
	RunE:  runMatch,
}

var (
	matchProfilePath string
	matchJobPath     string
	matchOutput      string
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to CVProfile or AnalysisResult JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to job requirements JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JobCompatibility JSON file (defaults to stdout)")

	for _, name := range []string{"profile", "job"} {
		if err := matchCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(matchProfilePath)
	if err != nil {
		return err
	}
	req, err := readRequirements(matchJobPath)
	if err != nil {
		return err
	}
	if err := matching.ValidateRequirements(req); err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	matcher, err := matching.NewMatcher(cfg.Matching)
	if err != nil {
		return err
	}
	compatibility := matcher.Match(profile, req)

	if rootVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintCompatibility(&compatibility)
	}
	return writeJSON(cmd.OutOrStdout(), matchOutput, compatibility)
}
