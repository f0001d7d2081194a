package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-analyzer/internal/ingestion"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/store"
	"github.com/jonathan/cv-analyzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Analyze several CVs concurrently",
	Long: `Analyzes every file given on the command line, or every document in a --manifest
JSON file, with bounded concurrency. A document that cannot be read or analysed is
reported as a failure at its position without affecting the others.`,
	RunE: runBatch,
}

var (
	batchJobPath  string
	batchManifest string
	batchOutput   string
	batchWorkers  int
)

func init() {
	batchCmd.Flags().StringVarP(&batchJobPath, "job", "j", "", "Path to job requirements JSON file (optional)")
	batchCmd.Flags().StringVarP(&batchManifest, "manifest", "m", "", "Path to a JSON array of extracted documents")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output BatchResult JSON file (defaults to stdout)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Maximum documents analysed at once (overrides config)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if batchManifest == "" && len(args) == 0 {
		return errors.New("either files or --manifest must be provided")
	}
	if batchManifest != "" && len(args) > 0 {
		return errors.New("files and --manifest are mutually exclusive")
	}

	req, err := readRequirements(batchJobPath)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	var (
		docs     []types.RawDocument
		failures map[int]*types.FailureRecord
	)
	if batchManifest != "" {
		docs, err = ingestion.LoadManifest(batchManifest)
		if err != nil {
			return err
		}
	} else {
		docs, failures = extractAll(cmd, args)
	}

	batch, runErr := a.analyzer.RunBatch(ctx, docs, req)
	if batch == nil {
		return runErr
	}
	batch = mergeFailures(batch, failures)

	if a.store != nil {
		if err := store.SaveBatch(ctx, a.store, batch); err != nil {
			a.logger.Warn("failed to store batch", zap.Error(err))
		}
	}

	if rootVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBatch(batch)
	}
	if err := writeJSON(cmd.OutOrStdout(), batchOutput, batch); err != nil {
		return err
	}
	if batchOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote batch of %d (%d completed, %d failed) to %s\n",
			batch.Total, batch.Completed, batch.Failed, batchOutput)
	}
	return runErr
}

// extractAll reads every file. Files that cannot be read are returned as failures
// keyed by their position in paths.
func extractAll(cmd *cobra.Command, paths []string) ([]types.RawDocument, map[int]*types.FailureRecord) {
	docs := make([]types.RawDocument, 0, len(paths))
	failures := make(map[int]*types.FailureRecord)
	for i, path := range paths {
		doc, err := ingestion.ExtractFile(cmd.Context(), path)
		if err != nil {
			var extractErr *ingestion.ExtractError
			filename := path
			if errors.As(err, &extractErr) {
				filename = extractErr.Filename
			}
			failures[i] = &types.FailureRecord{
				Filename:  filename,
				ErrorKind: types.ErrorKindExtraction,
				Message:   err.Error(),
			}
			continue
		}
		docs = append(docs, doc)
	}
	return docs, failures
}

// mergeFailures places ingestion failures back at their original positions and
// renumbers every item.
func mergeFailures(batch *types.BatchResult, failures map[int]*types.FailureRecord) *types.BatchResult {
	if len(failures) == 0 {
		return batch
	}
	total := len(batch.Results) + len(failures)
	items := make([]types.BatchItem, 0, total)
	next := 0
	for i := 0; i < total; i++ {
		if f, ok := failures[i]; ok {
			items = append(items, types.BatchItem{Index: i, Failure: f})
			continue
		}
		item := batch.Results[next]
		next++
		item.Index = i
		items = append(items, item)
	}
	batch.Results = items
	batch.Total = total
	batch.Failed += len(failures)
	return batch
}
