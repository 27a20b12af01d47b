package structural

import "fmt"

// CompileError reports a definition that could not be compiled into a Program.
// It indicates a defect in the schema tables, not in the validated document.
type CompileError struct {
	Definition string
	Message    string
	Cause      error
}

func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compile %s: %s: %v", e.Definition, e.Message, e.Cause)
	}
	return fmt.Sprintf("compile %s: %s", e.Definition, e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Cause
}
