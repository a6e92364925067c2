// Package apperrors defines the sentinel errors the service layer uses to
// classify failures. Handlers translate them to HTTP status codes; anything
// that does not match one of these becomes a generic 500.
package apperrors

import "errors"

var (
	// ErrValidation marks missing or malformed input (HTTP 400).
	ErrValidation = errors.New("validation error")
	// ErrAuthentication marks bad credentials or a bad token (HTTP 401).
	ErrAuthentication = errors.New("authentication error")
	// ErrNotFound marks a lookup or report with no matching data (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation surfaced by the store (HTTP 409).
	ErrConflict = errors.New("conflict")
)
