package get_calendar

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

// AvailabilityRepository is the availability entry storage contract.
type AvailabilityRepository interface {
	GetRange(ctx context.Context, providerID int64, from, to time.Time, categoryTypeID *int64) ([]*domain.AvailabilityEntry, error)
}

// MissionRepository is the mission storage contract.
type MissionRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.MissionFilter) ([]*domain.Mission, error)
}

// ConfigRepository is the category config storage contract.
type ConfigRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.CategoryConfig, error)
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
