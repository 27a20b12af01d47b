// Package types provides the result types shared by the validation engine, the CLI and the HTTP API.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RootPath is the path reported for diagnostics that concern the whole document.
const RootPath = "root"

// ValidationError is a hard failure: the document is not eligible as written.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"` // best-effort source line, advisory only
}

// ValidationWarning is an advisory finding: the document is valid but incomplete.
type ValidationWarning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
}

// ValidationResult holds every diagnostic produced for one JSON-LD block, in insertion order.
type ValidationResult struct {
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`

	// UnresolvedTypes lists @type values that matched no schema and were checked
	// against the default schema instead.
	UnresolvedTypes []string `json:"unresolvedTypes,omitempty"`
}

// NewValidationResult returns an empty result whose slices marshal as [] rather than null.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationWarning{},
	}
}

// Valid reports whether the result carries no errors. Warnings do not count.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AddError appends an error. line may be nil when no hint is known.
func (r *ValidationResult) AddError(path, message string, line *int) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message, Line: line})
}

// AddWarning appends a warning. line may be nil when no hint is known.
func (r *ValidationResult) AddWarning(path, message string, line *int) {
	r.Warnings = append(r.Warnings, ValidationWarning{Path: path, Message: message, Line: line})
}

// Merge appends other's diagnostics after r's, preserving order.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.UnresolvedTypes = append(r.UnresolvedTypes, other.UnresolvedTypes...)
}

// BlockResult pairs a result with the position of its block in the page it was extracted from.
type BlockResult struct {
	Index  int               `json:"index"`
	Result *ValidationResult `json:"result"`
}
