package check_time_slot

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

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
