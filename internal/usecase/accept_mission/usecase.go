package accept_mission

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	missionRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/mission"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase accepts a pending mission. The schedule is re-checked under
// the row lock because it may have changed since the request: a
// colliding mission accepted in between makes this one fail with a
// conflict instead of overbooking. The target status depends on the
// payment: a settled payment sends the mission straight to upcoming,
// an outstanding one parks it in pending_confirmation until the payment
// service confirms.
type UseCase struct {
	missionRepo      MissionRepository
	availabilityRepo AvailabilityRepository
	configRepo       ConfigRepository
	payments         PaymentsClient
	notifier         NotifierClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	missionRepository MissionRepository,
	availabilityRepository AvailabilityRepository,
	configRepository ConfigRepository,
	payments PaymentsClient,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		missionRepo:      missionRepository,
		availabilityRepo: availabilityRepository,
		configRepo:       configRepository,
		payments:         payments,
		notifier:         notifierClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute accepts the mission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptMission: mission=%d by provider=%d", req.MissionID, req.ProviderID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcceptMission: validation failed: %v", err)
		return nil, err
	}

	// 2. Ask the payment service first; the HTTP call stays outside the
	// transaction. When the service is degraded the conservative answer
	// is pending.
	pending, err := uc.payments.IsPaymentPending(ctx, req.MissionID)
	if err != nil {
		uc.logger.Warn("AcceptMission: payment check degraded for mission=%d, treating as pending: %v", req.MissionID, err)
		pending = true
	}

	target := domain.StatusUpcoming
	if pending {
		target = domain.StatusPendingConfirmation
	}

	var mission *domain.Mission

	// 3. Re-check the schedule and apply the transition under the
	// mission's row lock
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		mission, err = uc.missionRepo.GetByID(txCtx, req.MissionID)
		if err != nil {
			if errors.Is(err, missionRepo.ErrMissionNotFound) {
				return ErrMissionNotFound
			}
			return fmt.Errorf("%w: failed to get mission: %v", ErrInternal, err)
		}

		if mission.ProviderID != req.ProviderID {
			return ErrAccessDenied
		}

		if mission.Status != domain.StatusPendingAcceptance || !domain.CanTransition(mission.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, mission.Status, target)
		}

		if err := uc.revalidateSchedule(txCtx, mission); err != nil {
			return err
		}

		if err := uc.missionRepo.UpdateStatus(txCtx, req.MissionID, target); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logError(req.MissionID, err)
		return nil, err
	}

	uc.logger.Info("AcceptMission: mission=%d accepted, status=%s", req.MissionID, target)

	// 4. Notify the client
	uc.notifier.NotifyAsync(notifier.MissionEvent{
		Event:      notifier.EventMissionAccepted,
		MissionID:  mission.ID,
		ProviderID: mission.ProviderID,
		ClientID:   mission.ClientID,
		Status:     string(target),
	})

	return &Response{ID: req.MissionID, Status: string(target)}, nil
}

// revalidateSchedule re-runs the admissibility check of the request,
// excluding the mission itself from the occupancy. Collective missions
// skip it: their spots are held by the slot bookings created at request
// time.
func (uc *UseCase) revalidateSchedule(ctx context.Context, mission *domain.Mission) error {
	if mission.IsCollective() {
		return nil
	}

	cfg, err := uc.configRepo.GetBySlug(ctx, mission.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(mission.CategorySlug)
	}

	var categoryTypeID *int64
	if cfg.CategoryTypeID > 0 {
		categoryTypeID = ptr.Ptr(cfg.CategoryTypeID)
	}

	missions, err := uc.missionRepo.GetByProviderWithFilter(ctx, domain.MissionFilter{
		ProviderID:     mission.ProviderID,
		CategoryTypeID: categoryTypeID,
		StartDate:      ptr.Ptr(mission.StartDate),
		EndDate:        ptr.Ptr(mission.EndDate),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	others := make([]*domain.Mission, 0, len(missions))
	for _, m := range missions {
		if m.ID != mission.ID {
			others = append(others, m)
		}
	}

	for date := mission.StartDate; !date.After(mission.EndDate); date = date.AddDate(0, 0, 1) {
		entry, err := uc.availabilityRepo.GetForDay(ctx, mission.ProviderID, date, categoryTypeID)
		if err != nil {
			if !errors.Is(err, availabilityRepo.ErrEntryNotFound) {
				return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
			}
			// No entry means the day is closed by default.
			entry = nil
		}

		if entry == nil || !entry.IsOpen() {
			return fmt.Errorf("%w: day %s is closed", ErrConflict, date.Format(domain.DateFormat))
		}

		if cfg.Mode() == domain.ModeCapacity {
			remaining := domain.RemainingCapacityForDay(date, entry, others, cfg)
			if remaining < mission.AnimalCount {
				return fmt.Errorf("%w: %d spots left on %s, %d needed",
					ErrConflict, remaining, date.Format(domain.DateFormat), mission.AnimalCount)
			}
			continue
		}

		// Same admissibility rule as the request: the raw window must fit
		// a declared open window, the buffered one must not touch anyone.
		if mission.HasTimeWindow() {
			raw, err := domain.TimeSlot{StartTime: *mission.StartTime, EndTime: *mission.EndTime}.Interval()
			if err != nil {
				return fmt.Errorf("%w: invalid time window: %v", ErrInternal, err)
			}
			if !domain.FitsOpenWindows(raw, entry.OpenWindows()) {
				return fmt.Errorf("%w: window no longer open on %s", ErrConflict, date.Format(domain.DateFormat))
			}
		} else if entry.Status != domain.DayAvailable {
			return fmt.Errorf("%w: day %s is no longer fully open", ErrConflict, date.Format(domain.DateFormat))
		}

		window := domain.MissionWindow(mission, cfg)
		for _, busy := range domain.BusyWindows(date, others, cfg) {
			if window.Overlaps(busy) {
				return fmt.Errorf("%w: window collides on %s", ErrConflict, date.Format(domain.DateFormat))
			}
		}
	}

	return nil
}

func (uc *UseCase) logError(missionID int64, err error) {
	switch {
	case errors.Is(err, ErrMissionNotFound):
		uc.logger.Warn("AcceptMission: mission=%d not found", missionID)
	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("AcceptMission: access denied for mission=%d", missionID)
	case errors.Is(err, ErrInvalidTransition):
		uc.logger.Warn("AcceptMission: invalid transition for mission=%d: %v", missionID, err)
	case errors.Is(err, ErrConflict):
		uc.logger.Warn("AcceptMission: schedule conflict for mission=%d: %v", missionID, err)
	default:
		uc.logger.Error("AcceptMission: failed for mission=%d: %v", missionID, err)
	}
}
