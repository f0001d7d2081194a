package extraction

import "fmt"

// ExtractionError is returned when an extractor cannot process a text at all
type ExtractionError struct {
	Extractor string
	Message   string
	Cause     error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error in %s: %s: %v", e.Extractor, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error in %s: %s", e.Extractor, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ConfigError represents an invalid extraction configuration
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
