package notifier

import "errors"

var (
	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service.
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
