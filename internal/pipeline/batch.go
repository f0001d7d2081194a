package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// RunBatch analyses docs on a bounded worker pool. Every document is analysed in
// isolation: a failure becomes a FailureRecord at that document's index and never
// affects another item. Results keep input order.
//
// When ctx is cancelled, documents that have not started are recorded as cancelled
// failures and the partial result is returned together with ctx.Err().
func (a *Analyzer) RunBatch(ctx context.Context, docs []types.RawDocument, req *types.JobRequirements) (*types.BatchResult, error) {
	start := a.clock()
	if req != nil {
		if err := matching.ValidateRequirements(req); err != nil {
			return nil, &ValidationError{Field: "job_requirements", Message: "invalid job requirements", Cause: err}
		}
	}

	items := make([]types.BatchItem, len(docs))
	g := new(errgroup.Group)
	g.SetLimit(a.workers)

	for i, doc := range docs {
		items[i].Index = i
		if err := ctx.Err(); err != nil {
			items[i].Failure = FailureFromError(doc.Filename, err)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				items[i].Failure = FailureFromError(doc.Filename, err)
				return nil
			}
			result, err := a.analyzeIsolated(ctx, doc, req)
			if err != nil {
				items[i].Failure = FailureFromError(doc.Filename, err)
				return nil
			}
			items[i].Result = result
			return nil
		})
	}
	_ = g.Wait()

	batch := &types.BatchResult{
		Total:   len(docs),
		Results: items,
	}
	for _, item := range items {
		if item.Succeeded() {
			batch.Completed++
		} else {
			batch.Failed++
		}
	}
	batch.ProcessingTimeSeconds = a.clock().Sub(start).Seconds()

	a.logger.Info("batch completed",
		zap.Int("total", batch.Total),
		zap.Int("completed", batch.Completed),
		zap.Int("failed", batch.Failed),
		zap.Int("workers", a.workers),
	)
	return batch, ctx.Err()
}

// analyzeIsolated runs Analyze and turns a panic into an internal error so one bad
// document cannot take down the batch.
func (a *Analyzer) analyzeIsolated(ctx context.Context, doc types.RawDocument, req *types.JobRequirements) (result *types.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis panicked", zap.String("filename", doc.Filename), zap.Any("panic", r))
			result = nil
			err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()
	return a.Analyze(ctx, doc, req)
}
