package ingestion

import "fmt"

// ExtractionError represents a failure to turn document bytes into text
type ExtractionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s: %s", e.Filename, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
