package get_availability

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetRange(ctx context.Context, providerID int64, from, to string, categoryTypeID *int64) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
