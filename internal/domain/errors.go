package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup exhausts both the cache and the
	// remote service without finding the record.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when caller-supplied data fails a
	// precondition checked before any network call.
	ErrValidation = errors.New("validation failed")
)
