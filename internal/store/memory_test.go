package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedResult(filename string, score float64) *types.AnalysisResult {
	return &types.AnalysisResult{
		Status:   types.StatusCompleted,
		Filename: filename,
		Profile:  &types.CVProfile{TechnicalSkills: []string{"Go"}},
		Score: &types.OverallScore{
			OverallScore: score,
			ScoreGrade:   types.GradeGood,
		},
		CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemory_SaveAssignsID(t *testing.T) {
	m := NewMemory()
	result := completedResult("cv.pdf", 72.5)

	require.NoError(t, m.Save(context.Background(), result))

	_, err := uuid.Parse(result.AnalysisID)
	require.NoError(t, err)

	got, err := m.Get(context.Background(), result.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, result.AnalysisID, got.AnalysisID)
	assert.Equal(t, "cv.pdf", got.Filename)
	assert.Equal(t, 72.5, got.Score.OverallScore)
	assert.Equal(t, result.CreatedAt, got.CreatedAt)
}

func TestMemory_KeepsExistingID(t *testing.T) {
	m := NewMemory()
	result := completedResult("cv.pdf", 60)
	result.AnalysisID = "fixed-id"

	require.NoError(t, m.Save(context.Background(), result))

	assert.Equal(t, "fixed-id", result.AnalysisID)
	_, err := m.Get(context.Background(), "fixed-id")
	assert.NoError(t, err)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	result := completedResult("cv.pdf", 60)
	require.NoError(t, m.Save(context.Background(), result))

	got, err := m.Get(context.Background(), result.AnalysisID)
	require.NoError(t, err)
	got.Profile.TechnicalSkills[0] = "Rust"

	again, err := m.Get(context.Background(), result.AnalysisID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.Profile.TechnicalSkills)
}

func TestMemory_GetNotFound(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_ScoreDistribution(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for _, score := range []float64{40, 55, 70, 85} {
		require.NoError(t, m.Save(ctx, completedResult("cv.pdf", score)))
	}
	failed := completedResult("broken.pdf", 99)
	failed.Status = types.StatusFailed
	require.NoError(t, m.Save(ctx, failed))

	all, err := m.ScoreDistribution(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{85, 70, 55, 40}, all)

	recent, err := m.ScoreDistribution(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{85, 70}, recent)
}

func TestSaveBatch(t *testing.T) {
	m := NewMemory()
	batch := &types.BatchResult{
		Total: 2,
		Results: []types.BatchItem{
			{Index: 0, Result: completedResult("a.pdf", 70)},
			{Index: 1, Failure: &types.FailureRecord{Filename: "b.pdf", ErrorKind: types.ErrorKindValidation, Message: "too short"}},
		},
	}

	require.NoError(t, SaveBatch(context.Background(), m, batch))

	_, err := uuid.Parse(batch.BatchID)
	require.NoError(t, err)
	id := batch.Results[0].Result.AnalysisID
	assert.NotEmpty(t, id)
	assert.Equal(t, batch.BatchID, m.BatchOf(id))
	assert.Equal(t, []types.FailureRecord{*batch.Results[1].Failure}, m.Failures())
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemory().Save(ctx, completedResult("cv.pdf", 50))
	assert.ErrorIs(t, err, context.Canceled)
}
