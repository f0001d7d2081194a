package matching

import "fmt"

// ConfigError represents an invalid matcher configuration
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("matching config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("matching config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// RequirementsError represents job requirements that cannot be matched against
type RequirementsError struct {
	Message string
	Cause   error
}

func (e *RequirementsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid job requirements: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid job requirements: %s", e.Message)
}

func (e *RequirementsError) Unwrap() error {
	return e.Cause
}
