// Package store persists analysis results. The analysis core never depends on it;
// the CLI uses it to assign analysis ids and to feed the historical score
// distribution back into scoring.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/cv-analyzer/internal/types"
)

// ErrNotFound is returned by Get when no analysis has the requested id
var ErrNotFound = errors.New("analysis not found")

// Store persists analysis results and failures
type Store interface {
	// Save stores a completed analysis, assigning result.AnalysisID if it is empty
	Save(ctx context.Context, result *types.AnalysisResult) error
	// SaveFailure records a document that could not be analysed and returns its id
	SaveFailure(ctx context.Context, failure *types.FailureRecord) (string, error)
	// Get returns a stored analysis by id
	Get(ctx context.Context, id string) (*types.AnalysisResult, error)
	// ScoreDistribution returns up to limit of the most recent overall scores
	ScoreDistribution(ctx context.Context, limit int) ([]float64, error)
}

// SaveBatch assigns batch.BatchID and stores every item of the batch. It stops at the
// first storage error.
func SaveBatch(ctx context.Context, s Store, batch *types.BatchResult) error {
	if batch.BatchID == "" {
		batch.BatchID = uuid.NewString()
	}
	ctx = withBatchID(ctx, batch.BatchID)
	for _, item := range batch.Results {
		switch {
		case item.Result != nil:
			if err := s.Save(ctx, item.Result); err != nil {
				return err
			}
		case item.Failure != nil:
			if _, err := s.SaveFailure(ctx, item.Failure); err != nil {
				return err
			}
		}
	}
	return nil
}

type batchKey struct{}

func withBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchKey{}, id)
}

// batchIDFrom returns the batch id SaveBatch attached to ctx, if any
func batchIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(batchKey{}).(string)
	return id
}
