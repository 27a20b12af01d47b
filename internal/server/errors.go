// Package server provides the HTTP API for structured-data validation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/structured-data-validator/internal/crawling"
	"github.com/jonathan/structured-data-validator/internal/validation"
)

// ErrInvalidBody indicates the request body could not be decoded
type ErrInvalidBody struct {
	Cause error
}

func (e *ErrInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrInvalidBody) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownType indicates no schema is registered under the requested name
type ErrUnknownType struct {
	Name string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown schema type: %s", e.Name)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		maxBytes   *http.MaxBytesError
		invalid    *ErrInvalidBody
		validErr   *ErrValidation
		optionsErr *validation.OptionsError
		unknown    *ErrUnknownType
		extractErr *crawling.ExtractionError
	)

	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &invalid), errors.As(err, &validErr), errors.As(err, &optionsErr):
		return http.StatusBadRequest
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &extractErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
