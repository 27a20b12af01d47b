package validation

import "fmt"

// OptionsError reports an invalid option value.
type OptionsError struct {
	Field   string
	Message string
	Cause   error
}

func (e *OptionsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid option %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Message)
}

func (e *OptionsError) Unwrap() error {
	return e.Cause
}
