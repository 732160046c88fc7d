package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	"github.com/pawfinder/PF-SchedulingService/internal/service/availability/models"
)

// Service manages the provider's declared availability calendar. Days
// with no entry are closed, so providers only store exceptions to that
// default.
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService creates the availability service.
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// SetDay declares or replaces the provider's availability for one date
// and category.
func (s *Service) SetDay(ctx context.Context, req *models.SetDayRequest) (*models.EntryResponse, error) {
	s.logger.Info("SetDay: setting availability for provider=%d on %s status=%s", req.ProviderID, req.Date, req.Status)

	if err := validateSetDay(req); err != nil {
		s.logger.Warn("SetDay: invalid request for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	entry, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("SetDay: failed to parse request for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.availabilityRepo.Upsert(ctx, entry)
	if err != nil {
		s.logger.Error("SetDay: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: SetDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDay: entry id=%d saved for provider=%d", saved.ID, saved.ProviderID)
	return models.FromDomainEntry(saved), nil
}

// GetRange returns the provider's declared entries within the period.
// These are the raw declarations, before missions are subtracted.
func (s *Service) GetRange(ctx context.Context, providerID int64, from, to string, categoryTypeID *int64) (*models.EntryListResponse, error) {
	fromDate, toDate, err := parsePeriod(from, to)
	if err != nil {
		s.logger.Warn("GetRange: invalid period for provider=%d: %v", providerID, err)
		return nil, err
	}

	entries, err := s.availabilityRepo.GetRange(ctx, providerID, fromDate, toDate, categoryTypeID)
	if err != nil {
		s.logger.Error("GetRange: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetRange - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntryList(entries), nil
}

// DeleteDay removes the provider's declaration for one date, returning
// the day to the closed-by-default state.
func (s *Service) DeleteDay(ctx context.Context, providerID int64, date string, categoryTypeID *int64) error {
	s.logger.Info("DeleteDay: deleting availability for provider=%d on %s", providerID, date)

	day, err := parseDate(date)
	if err != nil {
		s.logger.Warn("DeleteDay: invalid date for provider=%d: %v", providerID, err)
		return err
	}

	if err := s.availabilityRepo.Delete(ctx, providerID, day, categoryTypeID); err != nil {
		if errors.Is(err, availabilityRepo.ErrEntryNotFound) {
			s.logger.Warn("DeleteDay: no entry for provider=%d on %s", providerID, date)
			return ErrEntryNotFound
		}
		s.logger.Error("DeleteDay: repository error for provider=%d: %v", providerID, err)
		return fmt.Errorf("%w: DeleteDay - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateSetDay(req *models.SetDayRequest) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
	}

	status := domain.AvailabilityStatus(req.Status)
	if !domain.ValidAvailabilityStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if status != domain.DayPartial && len(req.TimeSlots) > 0 {
		return fmt.Errorf("%w: timeSlots only allowed with partial status", ErrInvalidInput)
	}

	for _, slot := range req.TimeSlots {
		if slot.StartTime >= slot.EndTime {
			return fmt.Errorf("%w: slot %s-%s start must be before end", ErrInvalidInput, slot.StartTime, slot.EndTime)
		}
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, value)
	}
	return t, nil
}

func parsePeriod(from, to string) (time.Time, time.Time, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toDate.Before(fromDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}
	return fromDate, toDate, nil
}
