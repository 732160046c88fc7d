package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the collective slot does not
	// exist under the provider.
	ErrSlotNotFound = errors.New("collective slot not found")

	// ErrInvalidInput is returned on malformed slot data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
