package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase computes a provider's effective availability over a date
// range. Entries and missions are loaded in one query each and the
// per-day engine runs in memory, so the cost stays flat regardless of
// range length.
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

// Execute evaluates every day of the range, in order.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the category config; absence falls back to defaults
	cfg, err := uc.configRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GetCalendar: failed to get config for category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(req.CategorySlug)
	}

	var categoryTypeID *int64
	if cfg.CategoryTypeID > 0 {
		categoryTypeID = ptr.Ptr(cfg.CategoryTypeID)
	}

	// 3. Load the declared entries for the whole range in one query
	entries, err := uc.availabilityRepo.GetRange(ctx, req.ProviderID, req.From, req.To, categoryTypeID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get availability for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	entryByDate := indexEntries(entries)

	// 4. Load the occupying missions overlapping the range in one query
	missions, err := uc.missionRepo.GetByProviderWithFilter(ctx, domain.MissionFilter{
		ProviderID:     req.ProviderID,
		CategoryTypeID: categoryTypeID,
		StartDate:      ptr.Ptr(req.From),
		EndDate:        ptr.Ptr(req.To),
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get missions for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	// 5. Run the engine day by day
	resp := &Response{
		Days:                make([]Day, 0, daysBetween(req.From, req.To)+1),
		BufferBeforeMinutes: cfg.BufferBeforeMinutes,
		BufferAfterMinutes:  cfg.BufferAfterMinutes,
	}

	for date := req.From; !date.After(req.To); date = date.AddDate(0, 0, 1) {
		status := domain.ComputeDayStatus(date, entryByDate[dateKey(date)], missions, cfg)
		resp.Days = append(resp.Days, toDay(status))
	}

	uc.logger.Info("GetCalendar: provider=%d category=%s computed %d days",
		req.ProviderID, req.CategorySlug, len(resp.Days))

	return resp, nil
}

// indexEntries maps entries by date, preferring category-scoped entries
// over legacy wildcard ones when both exist for the same day.
func indexEntries(entries []*domain.AvailabilityEntry) map[string]*domain.AvailabilityEntry {
	byDate := make(map[string]*domain.AvailabilityEntry, len(entries))
	for _, e := range entries {
		key := dateKey(e.Date)
		existing, ok := byDate[key]
		if !ok || (existing.CategoryTypeID == nil && e.CategoryTypeID != nil) {
			byDate[key] = e
		}
	}
	return byDate
}

func toDay(status domain.DayStatus) Day {
	day := Day{
		Date:              status.Date.Format(domain.DateFormat),
		Status:            string(status.Status),
		BookedSlots:       make([]BookedSlot, 0, len(status.BookedSlots)),
		RemainingCapacity: status.RemainingCapacity,
		MaxCapacity:       status.MaxCapacity,
	}
	for _, slot := range status.BookedSlots {
		day.BookedSlots = append(day.BookedSlots, BookedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}
	return day
}

func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
