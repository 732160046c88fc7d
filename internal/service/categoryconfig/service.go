package categoryconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/internal/service/categoryconfig/models"
)

// Service manages per-category scheduling configuration. Reads fall
// back to the category defaults when no row exists so the scheduling
// engine never depends on configuration being present.
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService creates the category config service.
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get returns the config for a category slug, or the defaults when none
// is stored.
func (s *Service) Get(ctx context.Context, slug string) (*models.CategoryConfigResponse, error) {
	cfg, err := s.configRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no config for category=%s, using defaults", slug)
			return models.FromDomainConfig(domain.DefaultCategoryConfig(slug)), nil
		}
		s.logger.Error("Get: repository error for category=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// GetAll returns every stored category config.
func (s *Service) GetAll(ctx context.Context) (*models.CategoryConfigListResponse, error) {
	configs, err := s.configRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfigList(configs), nil
}

// Update creates or replaces a category's config. The change applies
// immediately to future schedule computations.
func (s *Service) Update(ctx context.Context, req *models.UpdateCategoryConfigRequest) (*models.CategoryConfigResponse, error) {
	s.logger.Info("Update: updating config for category=%s (type=%d)", req.CategorySlug, req.CategoryTypeID)

	if err := validateConfig(req); err != nil {
		s.logger.Warn("Update: invalid config for category=%s: %v", req.CategorySlug, err)
		return nil, err
	}

	cfg, err := s.configRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error for category=%s: %v", req.CategorySlug, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: config id=%d saved for category=%s", cfg.ID, cfg.CategorySlug)
	return models.FromDomainConfig(cfg), nil
}

func validateConfig(req *models.UpdateCategoryConfigRequest) error {
	if req.CategoryTypeID <= 0 {
		return fmt.Errorf("%w: categoryTypeId must be positive", ErrInvalidInput)
	}
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: categorySlug is required", ErrInvalidInput)
	}
	if req.BufferBeforeMinutes < 0 || req.BufferBeforeMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferBeforeMinutes must be within [0, %d]", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if req.BufferAfterMinutes < 0 || req.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferAfterMinutes must be within [0, %d]", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	if req.IsCapacityBased && (req.MaxAnimals < 1 || req.MaxAnimals > domain.MaxMaxAnimals) {
		return fmt.Errorf("%w: maxAnimals must be within [1, %d]", ErrInvalidInput, domain.MaxMaxAnimals)
	}
	if !domain.ValidBillingType(domain.BillingType(req.BillingType)) {
		return fmt.Errorf("%w: unknown billingType %q", ErrInvalidInput, req.BillingType)
	}
	for _, u := range req.AllowedPriceUnits {
		if !domain.ValidPriceUnit(domain.PriceUnit(u)) {
			return fmt.Errorf("%w: unknown price unit %q", ErrInvalidInput, u)
		}
	}
	return nil
}
