package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/cv-analyzer/internal/types"
)

type memoryFailure struct {
	ID      string
	BatchID string
	Record  types.FailureRecord
}

// Memory is an in-process Store. Results are deep-copied on the way in and out.
type Memory struct {
	mu       sync.RWMutex
	order    []string
	results  map[string][]byte
	batches  map[string]string
	failures []memoryFailure
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		results: make(map[string][]byte),
		batches: make(map[string]string),
	}
}

// Save implements Store
func (m *Memory) Save(ctx context.Context, result *types.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result.AnalysisID == "" {
		result.AnalysisID = uuid.NewString()
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.results[result.AnalysisID]; !exists {
		m.order = append(m.order, result.AnalysisID)
	}
	m.results[result.AnalysisID] = data
	if batchID := batchIDFrom(ctx); batchID != "" {
		m.batches[result.AnalysisID] = batchID
	}
	return nil
}

// SaveFailure implements Store
func (m *Memory) SaveFailure(ctx context.Context, failure *types.FailureRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, memoryFailure{ID: id, BatchID: batchIDFrom(ctx), Record: *failure})
	return id, nil
}

// Get implements Store
func (m *Memory) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data, ok := m.results[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &result, nil
}

// ScoreDistribution implements Store. Scores are returned most recent first.
func (m *Memory) ScoreDistribution(ctx context.Context, limit int) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := []float64{}
	for i := len(m.order) - 1; i >= 0 && (limit <= 0 || len(scores) < limit); i-- {
		var result types.AnalysisResult
		if err := json.Unmarshal(m.results[m.order[i]], &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		if result.Status == types.StatusCompleted && result.Score != nil {
			scores = append(scores, result.Score.OverallScore)
		}
	}
	return scores, nil
}

// Failures returns a copy of the recorded failures in insertion order
func (m *Memory) Failures() []types.FailureRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.FailureRecord, len(m.failures))
	for i, f := range m.failures {
		out[i] = f.Record
	}
	return out
}

// BatchOf returns the batch id an analysis was saved under, if any
func (m *Memory) BatchOf(analysisID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.batches[analysisID]
}
