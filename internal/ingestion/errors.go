package ingestion

import "fmt"

// ExtractError is returned when text cannot be extracted from a file
type ExtractError struct {
	Filename string
	MimeType string
	Message  string
	Cause    error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error for %s (%s): %s: %v", e.Filename, e.MimeType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error for %s (%s): %s", e.Filename, e.MimeType, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
