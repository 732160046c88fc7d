package request_booking

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInvalidDate is returned when the requested period starts in the past.
	ErrInvalidDate = errors.New("request_booking: invalid booking date")

	// ErrDayClosed is returned when a requested day has no open availability.
	ErrDayClosed = errors.New("request_booking: provider is closed on this date")

	// ErrSlotNotAvailable is returned when the requested window collides
	// with an existing mission.
	ErrSlotNotAvailable = errors.New("request_booking: time slot is not available")

	// ErrInsufficientCapacity is returned when a capacity-based day cannot
	// fit the requested animals.
	ErrInsufficientCapacity = errors.New("request_booking: insufficient capacity")

	// ErrSlotNotFound is returned when a referenced collective slot does
	// not exist.
	ErrSlotNotFound = errors.New("request_booking: collective slot not found")

	// ErrSlotFull is returned when a collective slot cannot fit the
	// requested animals.
	ErrSlotFull = errors.New("request_booking: collective slot is full")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("request_booking: internal error")
)
