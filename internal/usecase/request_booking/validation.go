package request_booking

import (
	"fmt"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: categorySlug is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if req.AnimalCount < 1 {
		return fmt.Errorf("%w: animalCount must be at least 1", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	sessionType := domain.SessionType(req.SessionType)
	switch sessionType {
	case domain.SessionIndividual:
		if len(req.CollectiveSlotIDs) > 0 {
			return fmt.Errorf("%w: collectiveSlotIds only allowed for collective sessions", ErrInvalidInput)
		}
	case domain.SessionCollective:
		if len(req.CollectiveSlotIDs) == 0 {
			return fmt.Errorf("%w: collective sessions require at least one slot", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown sessionType %q", ErrInvalidInput, req.SessionType)
	}

	// A wall-clock window is either fully present or fully absent.
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidInput)
	}
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		if !req.StartTime.IsBefore(*req.EndTime) {
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// checkDayAdmissible verifies one day of the candidate's period against
// the declared calendar and the already occupying missions.
func checkDayAdmissible(
	date time.Time,
	entry *domain.AvailabilityEntry,
	missions []*domain.Mission,
	candidate *domain.Mission,
	cfg *domain.CategoryConfig,
) error {
	if entry == nil || !entry.IsOpen() {
		return ErrDayClosed
	}

	if cfg.Mode() == domain.ModeCapacity {
		remaining := domain.RemainingCapacityForDay(date, entry, missions, cfg)
		if remaining < candidate.AnimalCount {
			return fmt.Errorf("%w: %d spots left, %d requested", ErrInsufficientCapacity, remaining, candidate.AnimalCount)
		}
		return nil
	}

	// Exclusive mode: the buffered candidate window must not touch any
	// existing buffered window, and a timed candidate must fit inside a
	// declared open window.
	candidateWindow := domain.MissionWindow(candidate, cfg)

	if candidate.HasTimeWindow() {
		raw, err := domain.TimeSlot{StartTime: *candidate.StartTime, EndTime: *candidate.EndTime}.Interval()
		if err != nil {
			return fmt.Errorf("%w: invalid time window: %v", ErrInvalidInput, err)
		}
		if !domain.FitsOpenWindows(raw, entry.OpenWindows()) {
			return ErrSlotNotAvailable
		}
	} else if entry.Status != domain.DayAvailable {
		// A whole-day booking needs the whole day open.
		return ErrSlotNotAvailable
	}

	busy := domain.BusyWindows(date, missions, cfg)
	for _, iv := range busy {
		if iv.Overlaps(candidateWindow) {
			return ErrSlotNotAvailable
		}
	}

	return nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
