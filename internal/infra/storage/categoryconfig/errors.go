package categoryconfig

import "errors"

var (
	// ErrConfigNotFound is returned when no config exists for the category.
	ErrConfigNotFound = errors.New("categoryconfig.repository: config not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("categoryconfig.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("categoryconfig.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("categoryconfig.repository: failed to scan row")
)
