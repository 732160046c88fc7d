package accept_mission

import "errors"

var (
	// ErrMissionNotFound is returned when the mission does not exist.
	ErrMissionNotFound = errors.New("accept_mission: mission not found")

	// ErrAccessDenied is returned when the user is not the mission's provider.
	ErrAccessDenied = errors.New("accept_mission: access denied")

	// ErrInvalidTransition is returned when the mission is not awaiting
	// acceptance.
	ErrInvalidTransition = errors.New("accept_mission: invalid mission status transition")

	// ErrConflict is returned when the schedule changed between request
	// and acceptance and the mission no longer fits.
	ErrConflict = errors.New("accept_mission: slot is no longer available")

	// ErrInvalidInput is returned on malformed input data.
	ErrInvalidInput = errors.New("accept_mission: invalid input data")

	// ErrInternal is returned on internal use case errors.
	ErrInternal = errors.New("accept_mission: internal error")
)
