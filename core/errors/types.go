// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors behind the total zero-result provider contract

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a transport-level failure from a catalog API.
// Adapters return it internally; the public provider surface converts it to
// the zero-result contract.
type ExternalAPIError struct {
	StatusCode int
	Message    string
	Provider   string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.Provider, e.StatusCode, e.Message)
}

// MalformedResponseError represents an unexpected response shape from a
// catalog API. It receives the same degraded treatment as transport failures.
type MalformedResponseError struct {
	Provider string
	Message  string
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Provider, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}
