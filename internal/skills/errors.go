package skills

import "fmt"

// LoadError represents a failure to load the skill dictionary from a source
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
