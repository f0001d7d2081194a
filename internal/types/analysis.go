// Package types provides type definitions for structured data used throughout the cv-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// AnalysisStatus is the terminal state of one analysis
type AnalysisStatus string

// Analysis statuses
const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// ErrorKind classifies why a document could not be analysed
type ErrorKind string

// Error kinds reported in FailureRecord
const (
	ErrorKindValidation    ErrorKind = "validation_error"
	ErrorKindExtraction    ErrorKind = "extraction_failure"
	ErrorKindConfiguration ErrorKind = "configuration_error"
	ErrorKindCancelled     ErrorKind = "cancelled"
	ErrorKindInternal      ErrorKind = "internal_error"
)

// AnalysisResult aggregates everything produced for one document.
// AnalysisID is empty until a store assigns one.
type AnalysisResult struct {
	AnalysisID            string            `json:"analysis_id,omitempty"`
	Status                AnalysisStatus    `json:"status"`
	Filename              string            `json:"filename"`
	Profile               *CVProfile        `json:"profile"`
	Score                 *OverallScore     `json:"overall_score"`
	JobCompatibility      *JobCompatibility `json:"job_compatibility,omitempty"`
	Warnings              []string          `json:"warnings,omitempty"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds"`
	CreatedAt             time.Time         `json:"created_at"`
}

// FailureRecord describes a document that could not be analysed
type FailureRecord struct {
	Filename  string    `json:"filename"`
	ErrorKind ErrorKind `json:"error_kind"`
	Message   string    `json:"message"`
}

// BatchItem holds exactly one of Result or Failure
type BatchItem struct {
	Index   int             `json:"index"`
	Result  *AnalysisResult `json:"result,omitempty"`
	Failure *FailureRecord  `json:"failure,omitempty"`
}

// Succeeded reports whether the item carries a completed analysis
func (b BatchItem) Succeeded() bool {
	return b.Result != nil && b.Failure == nil
}

// BatchResult is the outcome of analysing several documents
type BatchResult struct {
	BatchID               string      `json:"batch_id,omitempty"`
	Total                 int         `json:"total"`
	Completed             int         `json:"completed"`
	Failed                int         `json:"failed"`
	Results               []BatchItem `json:"results"`
	ProcessingTimeSeconds float64     `json:"processing_time_seconds"`
}
