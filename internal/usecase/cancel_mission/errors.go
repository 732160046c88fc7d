package cancel_mission

import "errors"

var (
	// ErrMissionNotFound is returned when the mission does not exist.
	ErrMissionNotFound = errors.New("cancel_mission: mission not found")

	// ErrAccessDenied is returned when the user is neither the provider
	// nor the client of the mission.
	ErrAccessDenied = errors.New("cancel_mission: access denied")

	// ErrInvalidTransition is returned when the mission cannot be
	// cancelled from its current status.
	ErrInvalidTransition = errors.New("cancel_mission: invalid mission status transition")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("cancel_mission: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("cancel_mission: internal error")
)
