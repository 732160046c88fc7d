package get_remaining_capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase returns the free animal spots over a date range for a
// capacity-based category. The range value is the minimum of the
// per-day values: a booking of that size fits on every day of the
// period. A closed day pins it to zero.
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

// Execute computes the remaining capacity of the range.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRemainingCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the category config; absence falls back to defaults
	cfg, err := uc.configRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("GetRemainingCapacity: failed to get config for category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(req.CategorySlug)
	}

	// 3. Capacity only makes sense for capacity-based categories
	if cfg.Mode() != domain.ModeCapacity {
		uc.logger.Warn("GetRemainingCapacity: category=%s is not capacity based", req.CategorySlug)
		return nil, ErrNotCapacityBased
	}

	var categoryTypeID *int64
	if cfg.CategoryTypeID > 0 {
		categoryTypeID = ptr.Ptr(cfg.CategoryTypeID)
	}

	// 4. Load the declared entries for the whole range in one query
	entries, err := uc.availabilityRepo.GetRange(ctx, req.ProviderID, req.From, req.To, categoryTypeID)
	if err != nil {
		uc.logger.Error("GetRemainingCapacity: failed to get availability for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}
	entryByDate := indexEntries(entries)

	// 5. Load the occupying missions overlapping the range in one query
	missions, err := uc.missionRepo.GetByProviderWithFilter(ctx, domain.MissionFilter{
		ProviderID:     req.ProviderID,
		CategoryTypeID: categoryTypeID,
		StartDate:      ptr.Ptr(req.From),
		EndDate:        ptr.Ptr(req.To),
	})
	if err != nil {
		uc.logger.Error("GetRemainingCapacity: failed to get missions for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	// 6. Take the minimum over the days; an undeclared day counts zero
	remaining := cfg.MaxAnimals
	for date := req.From; !date.After(req.To); date = date.AddDate(0, 0, 1) {
		day := domain.RemainingCapacityForDay(date, entryByDate[dateKey(date)], missions, cfg)
		if day < remaining {
			remaining = day
		}
		if remaining == 0 {
			break
		}
	}

	uc.logger.Info("GetRemainingCapacity: provider=%d category=%s %s..%s -> %d/%d",
		req.ProviderID, req.CategorySlug,
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat),
		remaining, cfg.MaxAnimals)

	return &Response{
		From:              req.From.Format(domain.DateFormat),
		To:                req.To.Format(domain.DateFormat),
		RemainingCapacity: remaining,
		MaxCapacity:       cfg.MaxAnimals,
	}, nil
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

func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
