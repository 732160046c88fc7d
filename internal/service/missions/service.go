package missions

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	missionRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/mission"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/internal/service/missions/models"
)

// Service handles mission reads and the simple lifecycle transitions
// (refuse, confirm, start, complete). Transitions that reshape the
// provider's schedule (request, accept, cancel) live in their own
// usecases because they need capacity checks.
type Service struct {
	missionRepo MissionRepository
	slotRepo    SlotRepository
	notifier    NotifierClient
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the missions service.
func NewService(
	missionRepo MissionRepository,
	slotRepo SlotRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		missionRepo: missionRepo,
		slotRepo:    slotRepo,
		notifier:    notifierClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID fetches one mission. Only the provider or the client of the
// mission may see it.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.MissionResponse, error) {
	s.logger.Info("GetByID: fetching mission id=%d for user=%d", id, userID)

	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, missionRepo.ErrMissionNotFound) {
			s.logger.Warn("GetByID: mission id=%d not found", id)
			return nil, ErrMissionNotFound
		}
		s.logger.Error("GetByID: repository error for mission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if mission.ProviderID != userID && mission.ClientID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to mission id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainMission(mission), nil
}

// GetProviderMissions returns the provider's missions with optional
// filtering by category, client, period and status.
func (s *Service) GetProviderMissions(ctx context.Context, req *models.GetProviderMissionsRequest) (*models.MissionListResponse, error) {
	s.logger.Info("GetProviderMissions: fetching missions for provider=%d", req.ProviderID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderMissions: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	missions, err := s.missionRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderMissions: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderMissions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderMissions: fetched %d missions for provider=%d", len(missions), req.ProviderID)
	return models.FromDomainMissionList(missions), nil
}

// GetClientMissions returns the client's missions, newest first.
func (s *Service) GetClientMissions(ctx context.Context, req *models.GetClientMissionsRequest) (*models.MissionListResponse, error) {
	s.logger.Info("GetClientMissions: fetching missions for client=%d", req.ClientID)

	var status *domain.MissionStatus
	if req.Status != nil {
		st, err := models.ToDomainMissionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientMissions: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	missions, err := s.missionRepo.GetByClientID(ctx, req.ClientID, status)
	if err != nil {
		s.logger.Error("GetClientMissions: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientMissions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientMissions: fetched %d missions for client=%d", len(missions), req.ClientID)
	return models.FromDomainMissionList(missions), nil
}

// Refuse declines a pending mission. Only the provider may refuse, and
// only while the mission awaits acceptance or confirmation. Collective
// slot bookings of the mission are cancelled with it so the spots free
// up immediately.
func (s *Service) Refuse(ctx context.Context, missionID int64, req *models.RefuseMissionRequest) error {
	s.logger.Info("Refuse: refusing mission id=%d by provider=%d", missionID, req.ProviderID)

	var mission *domain.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		mission, err = s.lockProviderMission(ctx, missionID, req.ProviderID, domain.StatusRefused)
		if err != nil {
			return err
		}

		if err := s.missionRepo.Refuse(ctx, missionID, req.Reason); err != nil {
			return fmt.Errorf("%w: Refuse - repository error: %v", ErrInternal, err)
		}

		if mission.IsCollective() {
			if err := s.slotRepo.UpdateBookingStatusByMission(ctx, missionID, domain.SlotBookingCancelled); err != nil {
				return fmt.Errorf("%w: Refuse - slot bookings error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logTransitionError("Refuse", missionID, err)
		return err
	}

	s.notifyTransition(mission, notifier.EventMissionRefused, domain.StatusRefused, derefReason(req.Reason))
	s.logger.Info("Refuse: mission id=%d refused", missionID)
	return nil
}

// Confirm moves a mission awaiting payment confirmation to upcoming.
// Called when the payment service reports the payment as captured.
func (s *Service) Confirm(ctx context.Context, missionID int64, providerID int64) error {
	s.logger.Info("Confirm: confirming mission id=%d by provider=%d", missionID, providerID)

	var mission *domain.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		mission, err = s.lockProviderMission(ctx, missionID, providerID, domain.StatusUpcoming)
		if err != nil {
			return err
		}

		if err := s.missionRepo.UpdateStatus(ctx, missionID, domain.StatusUpcoming); err != nil {
			return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logTransitionError("Confirm", missionID, err)
		return err
	}

	s.notifyTransition(mission, notifier.EventMissionConfirmed, domain.StatusUpcoming, "")
	s.logger.Info("Confirm: mission id=%d confirmed", missionID)
	return nil
}

// Start moves an upcoming mission to in progress.
func (s *Service) Start(ctx context.Context, missionID int64, providerID int64) error {
	s.logger.Info("Start: starting mission id=%d by provider=%d", missionID, providerID)

	var mission *domain.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		mission, err = s.lockProviderMission(ctx, missionID, providerID, domain.StatusInProgress)
		if err != nil {
			return err
		}

		if err := s.missionRepo.UpdateStatus(ctx, missionID, domain.StatusInProgress); err != nil {
			return fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logTransitionError("Start", missionID, err)
		return err
	}

	s.notifyTransition(mission, notifier.EventMissionStarted, domain.StatusInProgress, "")
	s.logger.Info("Start: mission id=%d started", missionID)
	return nil
}

// Complete moves an in-progress mission to completed. Completed
// missions keep occupying the calendar, so no capacity is released.
// Collective slot bookings of the mission move to completed with it.
func (s *Service) Complete(ctx context.Context, missionID int64, req *models.CompleteMissionRequest) error {
	s.logger.Info("Complete: completing mission id=%d by provider=%d", missionID, req.ProviderID)

	var mission *domain.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		mission, err = s.lockProviderMission(ctx, missionID, req.ProviderID, domain.StatusCompleted)
		if err != nil {
			return err
		}

		if err := s.missionRepo.Complete(ctx, missionID, req.Notes); err != nil {
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		if mission.IsCollective() {
			if err := s.slotRepo.UpdateBookingStatusByMission(ctx, missionID, domain.SlotBookingCompleted); err != nil {
				return fmt.Errorf("%w: Complete - slot bookings error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logTransitionError("Complete", missionID, err)
		return err
	}

	s.notifyTransition(mission, notifier.EventMissionCompleted, domain.StatusCompleted, "")
	s.logger.Info("Complete: mission id=%d completed", missionID)
	return nil
}

// lockProviderMission loads the mission under a row lock and checks
// ownership and the lifecycle rule for the target status.
func (s *Service) lockProviderMission(ctx context.Context, missionID, providerID int64, target domain.MissionStatus) (*domain.Mission, error) {
	mission, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, missionRepo.ErrMissionNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("%w: lockProviderMission - repository error: %v", ErrInternal, err)
	}

	if mission.ProviderID != providerID {
		return nil, ErrAccessDenied
	}

	if !domain.CanTransition(mission.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, mission.Status, target)
	}

	return mission, nil
}

func (s *Service) notifyTransition(m *domain.Mission, event string, status domain.MissionStatus, reason string) {
	if m == nil {
		return
	}
	s.notifier.NotifyAsync(notifier.MissionEvent{
		Event:      event,
		MissionID:  m.ID,
		ProviderID: m.ProviderID,
		ClientID:   m.ClientID,
		Status:     string(status),
		Reason:     reason,
	})
}

func (s *Service) logTransitionError(op string, missionID int64, err error) {
	switch {
	case errors.Is(err, ErrMissionNotFound):
		s.logger.Warn("%s: mission id=%d not found", op, missionID)
	case errors.Is(err, ErrAccessDenied):
		s.logger.Warn("%s: access denied for mission id=%d", op, missionID)
	case errors.Is(err, ErrInvalidTransition):
		s.logger.Warn("%s: invalid transition for mission id=%d: %v", op, missionID, err)
	default:
		s.logger.Error("%s: failed for mission id=%d: %v", op, missionID, err)
	}
}

func derefReason(reason *string) string {
	if reason == nil {
		return ""
	}
	return *reason
}
