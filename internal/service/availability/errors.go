package availability

import "errors"

var (
	// ErrEntryNotFound is returned when no entry exists for the date.
	ErrEntryNotFound = errors.New("availability entry not found")

	// ErrInvalidInput is returned on malformed availability data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
