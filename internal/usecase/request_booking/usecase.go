package request_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	slotRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/collectiveslot"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

// UseCase creates a mission in pending_acceptance after checking that
// the provider can actually take it. The admissibility check and the
// insert run in one serializable transaction with the relevant mission
// rows locked, so two concurrent requests for the last free window
// cannot both succeed.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	missionRepo      MissionRepository
	slotRepo         SlotRepository
	configRepo       ConfigRepository
	notifier         NotifierClient
	txManager        TransactionManager
	commission       domain.CommissionPolicy
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	missionRepo MissionRepository,
	slotRepo SlotRepository,
	configRepo ConfigRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	commission domain.CommissionPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		missionRepo:      missionRepo,
		slotRepo:         slotRepo,
		configRepo:       configRepo,
		notifier:         notifierClient,
		txManager:        txManager,
		commission:       commission,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute runs the booking request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: client=%d, provider=%d, category=%s, period=%s..%s",
		req.ClientID, req.ProviderID, req.CategorySlug,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. The period must not start in the past
	now := uc.timeProvider.Now()
	if isDateInPast(req.StartDate, now) {
		uc.logger.Warn("RequestBooking: start date %s is in the past", req.StartDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Resolve the category config; absence falls back to defaults
	cfg, err := uc.configRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("RequestBooking: failed to get config for category=%s: %v", req.CategorySlug, err)
			return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}
		cfg = domain.DefaultCategoryConfig(req.CategorySlug)
	}

	// 4. Build the candidate mission
	mission := uc.buildMission(req, cfg)

	var result *domain.Mission

	// 5. Check admissibility and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if mission.IsCollective() {
			if err := uc.bookCollectiveSlots(txCtx, mission); err != nil {
				return err
			}
		} else {
			if err := uc.checkIndividualAdmissibility(txCtx, mission, cfg); err != nil {
				return err
			}
		}

		created, err := uc.missionRepo.Create(txCtx, mission)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to create mission: %v", err)
			return fmt.Errorf("%w: failed to create mission: %w", ErrInternal, err)
		}

		if created.IsCollective() {
			for _, slotID := range created.CollectiveSlotIDs {
				_, err := uc.slotRepo.AddBooking(txCtx, &domain.SlotBooking{
					SlotID:      slotID,
					MissionID:   created.ID,
					AnimalCount: created.AnimalCount,
					Status:      domain.SlotBookingBooked,
				})
				if err != nil {
					uc.logger.Error("RequestBooking: failed to book slot id=%d: %v", slotID, err)
					return fmt.Errorf("%w: failed to book slot: %w", ErrInternal, err)
				}
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestBooking: created mission id=%d for client=%d", result.ID, result.ClientID)

	// 6. Notify the provider about the new request
	uc.notifier.NotifyAsync(notifier.MissionEvent{
		Event:      notifier.EventMissionRequested,
		MissionID:  result.ID,
		ProviderID: result.ProviderID,
		ClientID:   result.ClientID,
		Status:     string(result.Status),
	})

	return toResponse(result), nil
}

func (uc *UseCase) buildMission(req *Request, cfg *domain.CategoryConfig) *domain.Mission {
	return &domain.Mission{
		ProviderID:        req.ProviderID,
		ClientID:          req.ClientID,
		CategorySlug:      req.CategorySlug,
		CategoryTypeID:    cfg.CategoryTypeID,
		VariantID:         req.VariantID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		AnimalCount:       req.AnimalCount,
		SessionType:       domain.SessionType(req.SessionType),
		CollectiveSlotIDs: req.CollectiveSlotIDs,
		Status:            domain.StatusPendingAcceptance,
		Amount:            req.Amount,
		AnnouncerEarnings: uc.commission.AnnouncerEarnings(req.Amount),
		Notes:             req.Notes,
	}
}

// bookCollectiveSlots locks the referenced slots and checks that every
// one of them still has room.
func (uc *UseCase) bookCollectiveSlots(ctx context.Context, mission *domain.Mission) error {
	slots, err := uc.slotRepo.GetByIDs(ctx, mission.CollectiveSlotIDs)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("RequestBooking: collective slot not found: %v", err)
			return ErrSlotNotFound
		}
		uc.logger.Error("RequestBooking: failed to get slots: %v", err)
		return fmt.Errorf("%w: failed to get slots: %w", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.ProviderID != mission.ProviderID {
			uc.logger.Warn("RequestBooking: slot id=%d belongs to provider=%d, not %d",
				slot.ID, slot.ProviderID, mission.ProviderID)
			return ErrSlotNotFound
		}
		if !slot.HasRoomFor(mission.AnimalCount) {
			uc.logger.Warn("RequestBooking: slot id=%d full, %d/%d spots taken",
				slot.ID, slot.BookedAnimals(), slot.MaxAnimals)
			return ErrSlotFull
		}
	}

	return nil
}

// checkIndividualAdmissibility verifies every day of the period against
// the declared calendar and the occupying missions, which are loaded
// under FOR UPDATE locks.
func (uc *UseCase) checkIndividualAdmissibility(ctx context.Context, mission *domain.Mission, cfg *domain.CategoryConfig) error {
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
		uc.logger.Error("RequestBooking: failed to get missions: %v", err)
		return fmt.Errorf("%w: failed to get missions: %w", ErrInternal, err)
	}

	for date := mission.StartDate; !date.After(mission.EndDate); date = date.AddDate(0, 0, 1) {
		entry, err := uc.availabilityRepo.GetForDay(ctx, mission.ProviderID, date, categoryTypeID)
		if err != nil {
			if !errors.Is(err, availabilityRepo.ErrEntryNotFound) {
				uc.logger.Error("RequestBooking: failed to get availability for %s: %v", date.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
			}
			// No entry means the day is closed by default.
			entry = nil
		}

		if err := checkDayAdmissible(date, entry, missions, mission, cfg); err != nil {
			uc.logger.Warn("RequestBooking: day %s not admissible: %v", date.Format(domain.DateFormat), err)
			return err
		}
	}

	return nil
}

func toResponse(m *domain.Mission) *Response {
	resp := &Response{
		ID:                m.ID,
		ProviderID:        m.ProviderID,
		ClientID:          m.ClientID,
		Status:            string(m.Status),
		StartDate:         m.StartDate.Format(domain.DateFormat),
		EndDate:           m.EndDate.Format(domain.DateFormat),
		AnimalCount:       m.AnimalCount,
		SessionType:       string(m.SessionType),
		Amount:            m.Amount,
		AnnouncerEarnings: m.AnnouncerEarnings,
		CreatedAt:         m.CreatedAt,
	}
	if m.StartTime != nil {
		s := m.StartTime.String()
		resp.StartTime = &s
	}
	if m.EndTime != nil {
		s := m.EndTime.String()
		resp.EndTime = &s
	}
	return resp
}
