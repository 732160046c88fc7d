package get_remaining_capacity

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("get_remaining_capacity: invalid input data")

	// ErrRangeTooLarge is returned when the requested period exceeds the
	// maximum range.
	ErrRangeTooLarge = errors.New("get_remaining_capacity: range too large")

	// ErrNotCapacityBased is returned for categories with exclusive blocking.
	ErrNotCapacityBased = errors.New("get_remaining_capacity: category is not capacity based")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("get_remaining_capacity: internal error")
)
