package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/cv-analyzer/internal/extraction"
	"github.com/jonathan/cv-analyzer/internal/matching"
	"github.com/jonathan/cv-analyzer/internal/scoring"
	"github.com/jonathan/cv-analyzer/internal/types"
)

// ValidationError is returned when a document or job requirements are rejected before analysis
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ConfigError represents invalid pipeline options
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pipeline config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pipeline config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// FailureFromError classifies err into a FailureRecord for filename
func FailureFromError(filename string, err error) *types.FailureRecord {
	return &types.FailureRecord{
		Filename:  filename,
		ErrorKind: classify(err),
		Message:   err.Error(),
	}
}

func classify(err error) types.ErrorKind {
	var validationErr *ValidationError
	var cfgErr *ConfigError
	var extractionErr *extraction.ExtractionError
	var extractionCfgErr *extraction.ConfigError
	var scoringCfgErr *scoring.ConfigError
	var matchingCfgErr *matching.ConfigError

	switch {
	case errors.As(err, &validationErr):
		return types.ErrorKindValidation
	case errors.As(err, &extractionErr):
		return types.ErrorKindExtraction
	case errors.As(err, &cfgErr), errors.As(err, &extractionCfgErr), errors.As(err, &scoringCfgErr), errors.As(err, &matchingCfgErr):
		return types.ErrorKindConfiguration
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return types.ErrorKindCancelled
	default:
		return types.ErrorKindInternal
	}
}
