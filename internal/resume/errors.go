package resume

import "fmt"

// InputError reports a document that could not be turned into résumé text
type InputError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
