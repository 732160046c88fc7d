package cancel_mission

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/payments"
)

// MissionRepository is the mission storage contract.
type MissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mission, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// SlotRepository keeps collective slot bookings in lockstep with the
// mission lifecycle.
type SlotRepository interface {
	UpdateBookingStatusByMission(ctx context.Context, missionID int64, status domain.SlotBookingStatus) error
}

// PaymentsClient requests refunds from the payment service.
type PaymentsClient interface {
	RequestRefundAsync(refund payments.RefundRequest)
}

// NotifierClient publishes mission lifecycle events.
type NotifierClient interface {
	NotifyAsync(event notifier.MissionEvent)
}

// TransactionManager runs the transition under the mission's row lock.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
