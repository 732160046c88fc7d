package missions

import (
	"context"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
)

// MissionRepository is the mission storage contract.
type MissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mission, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.MissionFilter) ([]*domain.Mission, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.MissionStatus) ([]*domain.Mission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MissionStatus) error
	Refuse(ctx context.Context, id int64, reason *string) error
	Complete(ctx context.Context, id int64, notes *string) error
}

// SlotRepository keeps collective slot bookings in lockstep with the
// mission lifecycle.
type SlotRepository interface {
	UpdateBookingStatusByMission(ctx context.Context, missionID int64, status domain.SlotBookingStatus) error
}

// NotifierClient publishes mission lifecycle events.
type NotifierClient interface {
	NotifyAsync(event notifier.MissionEvent)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
