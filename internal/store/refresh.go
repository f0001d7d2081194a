package store

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-analyzer/internal/reference"
)

// RefreshDistribution loads up to limit recent scores from s and swaps them into ref
// as the new score distribution, keeping the current institution ranking. An empty
// history leaves ref unchanged.
func RefreshDistribution(ctx context.Context, s Store, ref *reference.Store, limit int) (int, error) {
	scores, err := s.ScoreDistribution(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to load score distribution: %w", err)
	}
	if len(scores) == 0 {
		return 0, nil
	}
	snap := ref.Snapshot()
	snap.Distribution = reference.NewDistribution(scores)
	ref.Refresh(snap)
	return len(scores), nil
}
