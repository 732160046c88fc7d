package check_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase tests whether a candidate start time collides with the
// provider's existing missions. The check is deliberately conservative:
// buffered window boundaries count as booked, so back-to-back bookings
// never share a buffer minute.
type UseCase struct {
	missionRepo MissionRepository
	configRepo  ConfigRepository
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	missionRepo MissionRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		missionRepo: missionRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// Execute runs the collision check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the category config; absence falls back to defaults
	cfg, err := uc.configRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CheckTimeSlot: failed to get config for category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(req.CategorySlug)
	}

	var categoryTypeID *int64
	if cfg.CategoryTypeID > 0 {
		categoryTypeID = ptr.Ptr(cfg.CategoryTypeID)
	}

	// 3. Load the occupying missions overlapping the date
	missions, err := uc.missionRepo.GetByProviderWithFilter(ctx, domain.MissionFilter{
		ProviderID:     req.ProviderID,
		CategoryTypeID: categoryTypeID,
		StartDate:      ptr.Ptr(req.Date),
		EndDate:        ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("CheckTimeSlot: failed to get missions for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	// 4. Capacity-based categories block only when the day is full
	if cfg.Mode() == domain.ModeCapacity {
		consumed := 0
		for _, m := range missions {
			if m.IsOccupying() && m.CoversDate(req.Date) {
				consumed += m.AnimalCount
			}
		}
		return &Response{Booked: consumed >= cfg.MaxAnimals}, nil
	}

	// 5. Exclusive categories test the start minute against the merged
	// buffered windows, boundaries included
	startMinute, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	busy := domain.BusyWindows(req.Date, missions, cfg)
	booked := domain.IsStartMinuteBooked(startMinute, busy)

	uc.logger.Info("CheckTimeSlot: provider=%d date=%s time=%s -> booked=%t",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime, booked)

	return &Response{Booked: booked}, nil
}
