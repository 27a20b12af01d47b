package document

import "fmt"

// SyntaxError reports input that is not a single well-formed JSON value.
type SyntaxError struct {
	Message string
	Cause   error
}

func (e *SyntaxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("syntax error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("syntax error: %s", e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}
