package store

import (
	"context"
	"testing"

	"github.com/jonathan/cv-analyzer/internal/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshDistribution(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	for _, score := range []float64{20, 40, 60, 80} {
		require.NoError(t, m.Save(ctx, completedResult("cv.pdf", score)))
	}
	institutions := reference.NewInstitutionRanking([]reference.RankedInstitution{{Name: "MIT", Rank: 1}})
	ref := reference.NewStore(reference.Snapshot{Institutions: institutions})

	n, err := RefreshDistribution(ctx, m, ref, 100)
	require.NoError(t, err)

	assert.Equal(t, 4, n)
	assert.Equal(t, 4, ref.Distribution().Len())
	assert.Same(t, institutions, ref.Institutions())
	p, ok := ref.Distribution().Percentile(50)
	require.True(t, ok)
	assert.Equal(t, 50, p)
}

func TestRefreshDistribution_EmptyHistoryKeepsSnapshot(t *testing.T) {
	existing := reference.NewDistribution([]float64{10, 90})
	ref := reference.NewStore(reference.Snapshot{Distribution: existing})

	n, err := RefreshDistribution(context.Background(), NewMemory(), ref, 0)
	require.NoError(t, err)

	assert.Zero(t, n)
	assert.Same(t, existing, ref.Distribution())
}
