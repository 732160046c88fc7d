package payments

import "errors"

var (
	// ErrPaymentNotFound is returned when no payment exists for the mission.
	ErrPaymentNotFound = errors.New("payment not found for mission")

	// ErrInternal is returned on internal client errors.
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service.
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrServiceDegraded is returned when the payment service is
	// unreachable and the caller should fall back to treating the
	// payment as pending.
	ErrServiceDegraded = errors.New("payments service unavailable: graceful degradation applied")
)
