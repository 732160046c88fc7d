package request_booking

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
)

// AvailabilityRepository is the availability entry storage contract.
type AvailabilityRepository interface {
	GetForDay(ctx context.Context, providerID int64, date time.Time, categoryTypeID *int64) (*domain.AvailabilityEntry, error)
}

// MissionRepository is the mission storage contract.
type MissionRepository interface {
	Create(ctx context.Context, m *domain.Mission) (*domain.Mission, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.MissionFilter) ([]*domain.Mission, error)
}

// SlotRepository is the collective slot storage contract.
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.CollectiveSlot, error)
	AddBooking(ctx context.Context, b *domain.SlotBooking) (*domain.SlotBooking, error)
}

// ConfigRepository is the category config storage contract.
type ConfigRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.CategoryConfig, error)
}

// NotifierClient publishes mission lifecycle events.
type NotifierClient interface {
	NotifyAsync(event notifier.MissionEvent)
}

// TransactionManager runs the admissibility check and the insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
