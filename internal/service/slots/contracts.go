package slots

import (
	"context"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

// SlotRepository is the collective slot storage contract.
type SlotRepository interface {
	Create(ctx context.Context, s *domain.CollectiveSlot) (*domain.CollectiveSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.CollectiveSlot, error)
	ListByProvider(ctx context.Context, providerID int64, variantID *int64, from, to time.Time) ([]*domain.CollectiveSlot, error)
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
