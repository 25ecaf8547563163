// Package errors holds the application's sentinel errors. Services wrap
// them with %w and the API layer maps them to HTTP status codes.
package errors

import "errors"

var (
	// ErrNotFound: a chat or its context does not exist. Maps to 404.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: the request or a setting value is invalid. Maps to 400.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: the operation cannot run in the current state, for
	// example no backend candidate is reachable. Maps to 409.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission maps to 403.
	ErrPermission = errors.New("permission denied")

	// ErrInternal maps to 500.
	ErrInternal = errors.New("internal server error")
)
