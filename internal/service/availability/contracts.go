package availability

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

// AvailabilityRepository is the availability entry storage contract.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, entry *domain.AvailabilityEntry) (*domain.AvailabilityEntry, error)
	GetRange(ctx context.Context, providerID int64, from, to time.Time, categoryTypeID *int64) ([]*domain.AvailabilityEntry, error)
	Delete(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
