package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an existing CV profile",
	Long:  "Recomputes the overall score of a profile JSON file (a bare CVProfile or a stored AnalysisResult) with the current scoring configuration.",
	RunE:  runScore,
}

var (
	scoreProfilePath string
	scoreOutput      string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "Path to CVProfile or AnalysisResult JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output OverallScore JSON file (defaults to stdout)")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	profile, err := readProfile(scoreProfilePath)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	engine, err := scoring.NewEngine(a.cfg.Scoring, a.reference)
	if err != nil {
		return err
	}
	score := engine.Score(profile)

	if rootVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintScore(&score)
	}
	return writeJSON(cmd.OutOrStdout(), scoreOutput, score)
}
