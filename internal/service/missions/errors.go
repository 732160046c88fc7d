package missions

import "errors"

var (
	// ErrMissionNotFound is returned when the mission does not exist.
	ErrMissionNotFound = errors.New("mission not found")

	// ErrAccessDenied is returned when the user may not act on the mission.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition is returned when the lifecycle forbids the
	// requested status change.
	ErrInvalidTransition = errors.New("invalid mission status transition")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
