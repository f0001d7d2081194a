package reference

import "fmt"

// LoadError represents a failure to load a reference data file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reference data error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("reference data error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
