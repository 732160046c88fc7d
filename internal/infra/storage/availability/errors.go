package availability

import "errors"

var (
	// ErrEntryNotFound is returned when no availability entry exists for the key.
	ErrEntryNotFound = errors.New("availability.repository: entry not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeTimeSlots is returned when the time slots cannot be encoded or decoded.
	ErrEncodeTimeSlots = errors.New("availability.repository: failed to encode time slots")
)
