package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-analyzer/internal/ingestion"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/pipeline"
	internalschemas "github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single CV",
	Long: `Extracts text from a PDF, DOCX or plain-text CV, builds its profile and score, and
optionally matches it against job requirements. The analysis is written as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeJobPath string
	analyzeOutput  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job requirements JSON file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output AnalysisResult JSON file (defaults to stdout)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("CV file not found: %s", path)
	}
	req, err := readRequirements(analyzeJobPath)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	doc, err := ingestion.ExtractFile(ctx, path)
	if err != nil {
		return err
	}

	result, err := a.analyzer.Analyze(ctx, doc, req)
	if err != nil {
		failure := pipeline.FailureFromError(doc.Filename, err)
		if a.store != nil {
			if _, saveErr := a.store.SaveFailure(ctx, failure); saveErr != nil {
				a.logger.Warn("failed to record failure", zap.Error(saveErr))
			}
		}
		return fmt.Errorf("analysis failed (%s): %w", failure.ErrorKind, err)
	}

	if a.store != nil {
		if err := a.store.Save(ctx, result); err != nil {
			a.logger.Warn("failed to store analysis", zap.Error(err))
		}
	}

	if rootVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAnalysis(result)
	}

	if err := writeJSON(cmd.OutOrStdout(), analyzeOutput, result); err != nil {
		return err
	}
	if analyzeOutput != "" {
		if err := internalschemas.ValidateFile(schemas.AnalysisResult, analyzeOutput); err != nil {
			a.logger.Warn("output does not validate against schema", zap.String("path", analyzeOutput), zap.Error(err))
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote analysis to %s\n", analyzeOutput)
	}
	return nil
}
