package categoryconfig

import "errors"

var (
	// ErrInvalidInput is returned on malformed configuration values.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
