//go:build integration

package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestStore(t *testing.T) *Postgres {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	p, err := Connect(ctx, dsn)
	if err != nil {
		t.Skipf("database not reachable: %v", err)
	}
	require.NoError(t, p.Migrate(ctx))

	_, _ = p.pool.Exec(ctx, "DELETE FROM analyses WHERE filename LIKE 'integration-%'")
	_, _ = p.pool.Exec(ctx, "DELETE FROM analysis_failures WHERE filename LIKE 'integration-%'")
	return p
}

func TestIntegration_SaveAndGet(t *testing.T) {
	p := getTestStore(t)
	defer p.Close()
	ctx := context.Background()

	result := completedResult("integration-cv.pdf", 77.25)
	require.NoError(t, p.Save(ctx, result))

	got, err := p.Get(ctx, result.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, result.AnalysisID, got.AnalysisID)
	assert.Equal(t, 77.25, got.Score.OverallScore)

	result.Score.OverallScore = 80
	require.NoError(t, p.Save(ctx, result))
	got, err = p.Get(ctx, result.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.Score.OverallScore)
}

func TestIntegration_GetNotFound(t *testing.T) {
	p := getTestStore(t)
	defer p.Close()

	_, err := p.Get(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIntegration_SaveBatchAndDistribution(t *testing.T) {
	p := getTestStore(t)
	defer p.Close()
	ctx := context.Background()

	batch := &types.BatchResult{
		Results: []types.BatchItem{
			{Index: 0, Result: completedResult("integration-a.pdf", 91)},
			{Index: 1, Failure: &types.FailureRecord{Filename: "integration-b.pdf", ErrorKind: types.ErrorKindValidation, Message: "too short"}},
		},
	}
	require.NoError(t, SaveBatch(ctx, p, batch))

	scores, err := p.ScoreDistribution(ctx, 0)
	require.NoError(t, err)
	assert.Contains(t, scores, 91.0)
}
