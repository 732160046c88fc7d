package accept_mission

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
)

// MissionRepository is the mission storage contract.
type MissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mission, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.MissionFilter) ([]*domain.Mission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MissionStatus) error
}

// AvailabilityRepository is the availability entry storage contract.
type AvailabilityRepository interface {
	GetForDay(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) (*domain.AvailabilityEntry, error)
}

// ConfigRepository is the category config storage contract.
type ConfigRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.CategoryConfig, error)
}

// PaymentsClient reports the payment state of a mission.
type PaymentsClient interface {
	IsPaymentPending(ctx context.Context, missionID int64) (bool, error)
}

// NotifierClient publishes mission lifecycle events.
type NotifierClient interface {
	NotifyAsync(event notifier.MissionEvent)
}

// TransactionManager runs the transition under the mission's row lock.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
