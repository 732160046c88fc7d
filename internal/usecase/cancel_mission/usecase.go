package cancel_mission

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	missionRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/mission"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/payments"
)

// UseCase cancels a mission. Cancellation frees the mission's capacity
// immediately, voids its collective slot bookings, and triggers a
// refund per the refund policy. Either side of the mission may cancel;
// a provider cancelling a request still awaiting acceptance must use
// refuse instead.
type UseCase struct {
	missionRepo  MissionRepository
	slotRepo     SlotRepository
	payments     PaymentsClient
	notifier     NotifierClient
	txManager    TransactionManager
	refundPolicy domain.RefundPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	missionRepo MissionRepository,
	slotRepo SlotRepository,
	paymentsClient PaymentsClient,
	notifierClient NotifierClient,
	txManager TransactionManager,
	refundPolicy domain.RefundPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		missionRepo:  missionRepo,
		slotRepo:     slotRepo,
		payments:     paymentsClient,
		notifier:     notifierClient,
		txManager:    txManager,
		refundPolicy: refundPolicy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute cancels the mission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelMission: mission=%d by user=%d", req.MissionID, req.UserID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelMission: validation failed: %v", err)
		return nil, err
	}

	var mission *domain.Mission

	// 2. Apply the transition under the mission's row lock
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		mission, err = uc.missionRepo.GetByID(txCtx, req.MissionID)
		if err != nil {
			if errors.Is(err, missionRepo.ErrMissionNotFound) {
				return ErrMissionNotFound
			}
			return fmt.Errorf("%w: failed to get mission: %v", ErrInternal, err)
		}

		if mission.ProviderID != req.UserID && mission.ClientID != req.UserID {
			return ErrAccessDenied
		}

		if !domain.CanTransition(mission.Status, domain.StatusCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, mission.Status, domain.StatusCancelled)
		}

		if err := uc.missionRepo.Cancel(txCtx, req.MissionID, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel mission: %v", ErrInternal, err)
		}

		if mission.IsCollective() {
			if err := uc.slotRepo.UpdateBookingStatusByMission(txCtx, req.MissionID, domain.SlotBookingCancelled); err != nil {
				return fmt.Errorf("%w: failed to cancel slot bookings: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logError(req.MissionID, err)
		return nil, err
	}

	// 3. Derive the refund and hand it to the payment service
	refund := uc.refundPolicy.RefundAmount(mission, uc.timeProvider.Now())
	if refund > 0 {
		uc.payments.RequestRefundAsync(payments.RefundRequest{
			MissionID: mission.ID,
			Amount:    refund,
			Reason:    req.Reason,
		})
	}

	uc.logger.Info("CancelMission: mission=%d cancelled, refund=%d", req.MissionID, refund)

	// 4. Notify the other side
	uc.notifier.NotifyAsync(notifier.MissionEvent{
		Event:      notifier.EventMissionCancelled,
		MissionID:  mission.ID,
		ProviderID: mission.ProviderID,
		ClientID:   mission.ClientID,
		Status:     string(domain.StatusCancelled),
		Reason:     req.Reason,
	})

	return &Response{
		ID:           mission.ID,
		Status:       string(domain.StatusCancelled),
		RefundAmount: refund,
	}, nil
}

func (uc *UseCase) logError(missionID int64, err error) {
	switch {
	case errors.Is(err, ErrMissionNotFound):
		uc.logger.Warn("CancelMission: mission=%d not found", missionID)
	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("CancelMission: access denied for mission=%d", missionID)
	case errors.Is(err, ErrInvalidTransition):
		uc.logger.Warn("CancelMission: invalid transition for mission=%d: %v", missionID, err)
	default:
		uc.logger.Error("CancelMission: failed for mission=%d: %v", missionID, err)
	}
}
