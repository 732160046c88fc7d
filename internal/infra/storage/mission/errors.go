package mission

import "errors"

var (
	// ErrMissionNotFound is returned when the mission does not exist.
	ErrMissionNotFound = errors.New("mission.repository: mission not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("mission.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("mission.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("mission.repository: failed to scan row")

	// ErrInvalidStatus is returned on an attempt to persist an unknown status.
	ErrInvalidStatus = errors.New("mission.repository: invalid mission status")
)
