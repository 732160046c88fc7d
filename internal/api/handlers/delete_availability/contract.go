package delete_availability

import "context"

type AvailabilityService interface {
	DeleteDay(ctx context.Context, providerID int64, date string, categoryTypeID *int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
