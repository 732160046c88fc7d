package collectiveslot

import "errors"

var (
	// ErrSlotNotFound is returned when the collective slot does not exist.
	ErrSlotNotFound = errors.New("collectiveslot.repository: slot not found")

	// ErrBookingNotFound is returned when no slot booking matches the key.
	ErrBookingNotFound = errors.New("collectiveslot.repository: slot booking not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("collectiveslot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("collectiveslot.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("collectiveslot.repository: failed to scan row")
)
