package get_calendar

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrRangeTooLarge is returned when the requested period exceeds the cap.
	ErrRangeTooLarge = errors.New("get_calendar: requested range too large")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("get_calendar: internal error")
)
