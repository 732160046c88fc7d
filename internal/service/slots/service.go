package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	slotRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/collectiveslot"
	"github.com/pawfinder/PF-SchedulingService/internal/service/slots/models"
)

// Service manages collective slots. Slots live outside the per-day
// availability calendar: their capacity is tracked per slot, not per
// day.
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService creates the slots service.
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create opens a new collective slot for the provider.
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: creating slot for provider=%d on %s %s-%s", req.ProviderID, req.Date, req.StartTime, req.EndTime)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid slot for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	slot, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: failed to parse slot for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot id=%d created for provider=%d", created.ID, created.ProviderID)
	return models.FromDomainSlot(created), nil
}

// GetByID fetches one slot with its occupancy. Slots are addressed
// under the provider, so a slot of another provider reads as absent.
func (s *Service) GetByID(ctx context.Context, id int64, providerID int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d for provider=%d", id, providerID)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if slot.ProviderID != providerID {
		s.logger.Warn("GetByID: slot id=%d does not belong to provider=%d", id, providerID)
		return nil, ErrSlotNotFound
	}

	return models.FromDomainSlot(slot), nil
}

// List returns the provider's slots within the period, with occupancy.
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots for provider=%d from %s to %s",
		req.ProviderID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByProvider(ctx, req.ProviderID, req.VariantID, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

func validateCreate(req *models.CreateSlotRequest) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerId must be positive", ErrInvalidInput)
	}
	if req.VariantID <= 0 {
		return fmt.Errorf("%w: variantId must be positive", ErrInvalidInput)
	}
	if req.MaxAnimals < 1 || req.MaxAnimals > domain.MaxMaxAnimals {
		return fmt.Errorf("%w: maxAnimals must be within [1, %d]", ErrInvalidInput, domain.MaxMaxAnimals)
	}

	if req.StartTime >= req.EndTime {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}
