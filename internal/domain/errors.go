package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write would violate name uniqueness.
// The service pre-checks for a friendlier message; the repo translates the
// database unique-violation into the same sentinel, so the constraint stays
// the authoritative enforcement. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative value).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
