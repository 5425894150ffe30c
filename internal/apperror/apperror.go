// Package apperror defines the error taxonomy shared by services and handlers.
package apperror

import "errors"

var (
	// ErrValidation marks malformed or rule-violating input (HTTP 400).
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation, e.g. a taken email (HTTP 409).
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated marks bad credentials or a missing/invalid token (HTTP 401).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound marks an absent or unowned resource (HTTP 404).
	ErrNotFound = errors.New("not found")
)
