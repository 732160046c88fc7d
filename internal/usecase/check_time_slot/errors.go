package check_time_slot

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("check_time_slot: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("check_time_slot: internal error")
)
