package get_day_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase computes a provider's effective availability for one day:
// the declared calendar minus the occupying missions, interpreted
// through the category's concurrency model.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	missionRepo      MissionRepository
	configRepo       ConfigRepository
	logger           Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	missionRepo MissionRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		missionRepo:      missionRepo,
		configRepo:       configRepo,
		logger:           logger,
	}
}

// Execute evaluates one day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the category config; absence falls back to defaults
	cfg, err := uc.configRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GetDayStatus: failed to get config for category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(req.CategorySlug)
	}

	// 3. Load the declared availability entry (nil means closed)
	var categoryTypeID *int64
	if cfg.CategoryTypeID > 0 {
		categoryTypeID = ptr.Ptr(cfg.CategoryTypeID)
	}

	entry, err := uc.availabilityRepo.GetForDay(ctx, req.ProviderID, req.Date, categoryTypeID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrEntryNotFound) {
			uc.logger.Error("GetDayStatus: failed to get availability for provider=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		// No entry means the day is closed by default.
		entry = nil
	}

	// 4. Load the occupying missions overlapping the date
	missions, err := uc.missionRepo.GetByProviderWithFilter(ctx, domain.MissionFilter{
		ProviderID:     req.ProviderID,
		CategoryTypeID: categoryTypeID,
		StartDate:      ptr.Ptr(req.Date),
		EndDate:        ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetDayStatus: failed to get missions for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	// 5. Run the engine
	status := domain.ComputeDayStatus(req.Date, entry, missions, cfg)

	uc.logger.Info("GetDayStatus: provider=%d category=%s date=%s -> %s",
		req.ProviderID, req.CategorySlug, req.Date.Format(domain.DateFormat), status.Status)

	return toResponse(status), nil
}

func toResponse(status domain.DayStatus) *Response {
	resp := &Response{
		Date:                status.Date.Format(domain.DateFormat),
		Status:              string(status.Status),
		BookedSlots:         make([]BookedSlot, 0, len(status.BookedSlots)),
		RemainingCapacity:   status.RemainingCapacity,
		MaxCapacity:         status.MaxCapacity,
		BufferBeforeMinutes: status.BufferBefore,
		BufferAfterMinutes:  status.BufferAfter,
	}
	for _, slot := range status.BookedSlots {
		resp.BookedSlots = append(resp.BookedSlots, BookedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}
	return resp
}
