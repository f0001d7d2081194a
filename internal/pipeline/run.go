// Package pipeline orchestrates CV analysis: validation, parallel feature extraction,
// profile assembly, scoring and optional job matching, for one document or a batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/profile"
	"github.com/jonathan/cv-analyzer/internal/reference"
	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// Pipeline stages reported in progress events and logs
const (
	StageValidate = "validate"
	StageExtract  = "extract"
	StageAssemble = "assemble"
	StageScore    = "score"
	StageMatch    = "match"
)

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when analysis progress occurs. It may be called from
// several goroutines at once during a batch.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for building an Analyzer
type Options struct {
	Extraction   extraction.Config
	Scoring      scoring.Config
	Matching     matching.Config
	MinWordCount int
	// Workers bounds concurrent documents in RunBatch. Zero means runtime.NumCPU().
	Workers int
	// Reference supplies the score distribution and institution ranking. May be nil.
	Reference reference.Provider
	// Extractors overrides the default extractor set
	Extractors []extraction.Extractor
	Logger     *zap.Logger
	Clock      func() time.Time
	OnProgress ProgressCallback
}

// DefaultOptions returns options with every component at its default configuration
func DefaultOptions() Options {
	return Options{
		Extraction:   extraction.DefaultConfig(),
		Scoring:      scoring.DefaultConfig(),
		Matching:     matching.DefaultConfig(),
		MinWordCount: DefaultMinWordCount,
	}
}

// Analyzer runs the single-document pipeline. It holds no per-document state and is
// safe for concurrent use.
type Analyzer struct {
	extractors   []extraction.Extractor
	engine       *scoring.Engine
	matcher      *matching.Matcher
	minWordCount int
	workers      int
	logger       *zap.Logger
	clock        func() time.Time
	onProgress   ProgressCallback
}

// NewAnalyzer validates opts and wires the pipeline components
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if opts.MinWordCount < 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("min_word_count must not be negative, got %d", opts.MinWordCount)}
	}
	if opts.Workers < 0 {
		return nil, &ConfigError{Message: fmt.Sprintf("workers must not be negative, got %d", opts.Workers)}
	}

	extractors := opts.Extractors
	if len(extractors) == 0 {
		var err error
		extractors, err = extraction.DefaultExtractors(opts.Extraction)
		if err != nil {
			return nil, err
		}
	}
	engine, err := scoring.NewEngine(opts.Scoring, opts.Reference)
	if err != nil {
		return nil, err
	}
	matcher, err := matching.NewMatcher(opts.Matching)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		extractors:   extractors,
		engine:       engine,
		matcher:      matcher,
		minWordCount: opts.MinWordCount,
		workers:      opts.Workers,
		logger:       opts.Logger,
		clock:        opts.Clock,
		onProgress:   opts.OnProgress,
	}
	if a.minWordCount == 0 {
		a.minWordCount = DefaultMinWordCount
	}
	if a.workers == 0 {
		a.workers = runtime.NumCPU()
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	return a, nil
}

// emitProgress calls the progress callback if configured
func (a *Analyzer) emitProgress(stage, filename, message string, content any) {
	if a.onProgress != nil {
		a.onProgress(ProgressEvent{
			Stage:    stage,
			Filename: filename,
			Message:  message,
			Content:  content,
		})
	}
}

// Analyze runs the full pipeline on one document. req is optional; when nil no job
// compatibility is computed. A failing extractor only empties its own dimension and
// adds a warning; the document fails with *extraction.ExtractionError only when every
// extractor fails.
func (a *Analyzer) Analyze(ctx context.Context, doc types.RawDocument, req *types.JobRequirements) (*types.AnalysisResult, error) {
	start := a.clock()
	log := a.logger.With(zap.String("filename", doc.Filename))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateDocument(doc, a.minWordCount); err != nil {
		log.Info("document rejected", zap.Error(err))
		return nil, err
	}
	if req != nil {
		if err := matching.ValidateRequirements(req); err != nil {
			return nil, &ValidationError{Field: "job_requirements", Message: "invalid job requirements", Cause: err}
		}
	}
	a.emitProgress(StageValidate, doc.Filename, "Document accepted", nil)

	partials, warnings, err := a.extract(ctx, doc.ExtractedText, log)
	if err != nil {
		return nil, err
	}
	a.emitProgress(StageExtract, doc.Filename,
		fmt.Sprintf("Ran %d extractors (%d failed)", len(a.extractors), len(warnings)), nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cv := profile.Assemble(partials...)
	a.emitProgress(StageAssemble, doc.Filename,
		fmt.Sprintf("Assembled profile with %d skills", cv.TotalSkillsFound), cv)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	score := a.engine.Score(cv)
	a.emitProgress(StageScore, doc.Filename,
		fmt.Sprintf("Scored %.2f (%s)", score.OverallScore, score.ScoreGrade), score)

	var compat *types.JobCompatibility
	if req != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c := a.matcher.Match(cv, req)
		compat = &c
		a.emitProgress(StageMatch, doc.Filename,
			fmt.Sprintf("Compatibility %.2f (%s)", c.OverallCompatibility, c.MatchLevel), compat)
	}

	end := a.clock()
	result := &types.AnalysisResult{
		Status:                types.StatusCompleted,
		Filename:              doc.Filename,
		Profile:               cv,
		Score:                 &score,
		JobCompatibility:      compat,
		Warnings:              warnings,
		ProcessingTimeSeconds: end.Sub(start).Seconds(),
		CreatedAt:             end.UTC(),
	}
	log.Info("analysis completed",
		zap.Float64("overall_score", score.OverallScore),
		zap.String("grade", string(score.ScoreGrade)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", end.Sub(start)),
	)
	return result, nil
}

// extract runs every extractor concurrently and joins on completion. Results are
// returned in registration order regardless of completion order.
func (a *Analyzer) extract(ctx context.Context, text string, log *zap.Logger) ([]*types.PartialProfile, []string, error) {
	partials := make([]*types.PartialProfile, len(a.extractors))
	errs := make([]error, len(a.extractors))

	g, gCtx := errgroup.WithContext(ctx)
	for i, e := range a.extractors {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			partials[i], errs[i] = extraction.SafeExtract(e, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var warnings []string
	var failed []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		name := a.extractors[i].Name()
		var extractionErr *extraction.ExtractionError
		if !errors.As(err, &extractionErr) {
			err = &extraction.ExtractionError{Extractor: name, Message: "unexpected error", Cause: err}
		}
		log.Warn("extractor failed", zap.String("extractor", name), zap.Error(err))
		warnings = append(warnings, fmt.Sprintf("%s extraction failed: %v", name, err))
		failed = append(failed, err)
		partials[i] = nil
	}

	if len(failed) > 0 && len(failed) == len(a.extractors) {
		return nil, nil, &extraction.ExtractionError{
			Extractor: "all",
			Message:   "every extractor failed",
			Cause:     errors.Join(failed...),
		}
	}
	return partials, warnings, nil
}
