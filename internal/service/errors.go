package service

import "errors"

// Errors shared across services. Service-specific sentinels live next to
// the service that owns them.
var (
	// ErrValidation covers malformed or missing caller input.
	ErrValidation = errors.New("invalid request")

	// ErrForbidden means the authenticated user is not allowed to touch the
	// requested resource (e.g. a patient record of someone else's patient).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)
