package types

import "errors"

var (
	// ErrNotFound marks a referenced product, cart item or order as absent.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks a missing or malformed input field.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized marks a missing, invalid or expired session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream marks an unreachable or erroring backend.
	ErrUpstream = errors.New("upstream failure")
)
