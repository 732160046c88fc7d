package get_day_status

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("get_day_status: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("get_day_status: internal error")
)
