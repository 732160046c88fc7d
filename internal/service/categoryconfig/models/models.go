package models

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

// UpdateCategoryConfigRequest creates or replaces a category's config.
type UpdateCategoryConfigRequest struct {
	CategoryTypeID int64  `json:"categoryTypeId"`
	CategorySlug   string `json:"categorySlug"`

	IsCapacityBased bool `json:"isCapacityBased"`
	MaxAnimals      int  `json:"maxAnimals"`

	BufferBeforeMinutes         int  `json:"bufferBeforeMinutes"`
	BufferAfterMinutes          int  `json:"bufferAfterMinutes"`
	EnableDurationBasedBlocking bool `json:"enableDurationBasedBlocking"`

	AllowedPriceUnits []string `json:"allowedPriceUnits"`
	BillingType       string   `json:"billingType"`
}

// ToDomain converts the request into the domain config.
func (r *UpdateCategoryConfigRequest) ToDomain() *domain.CategoryConfig {
	units := make([]domain.PriceUnit, len(r.AllowedPriceUnits))
	for i, u := range r.AllowedPriceUnits {
		units[i] = domain.PriceUnit(u)
	}

	return &domain.CategoryConfig{
		CategoryTypeID:              r.CategoryTypeID,
		CategorySlug:                r.CategorySlug,
		IsCapacityBased:             r.IsCapacityBased,
		MaxAnimals:                  r.MaxAnimals,
		BufferBeforeMinutes:         r.BufferBeforeMinutes,
		BufferAfterMinutes:          r.BufferAfterMinutes,
		EnableDurationBasedBlocking: r.EnableDurationBasedBlocking,
		AllowedPriceUnits:           units,
		BillingType:                 domain.BillingType(r.BillingType),
	}
}

// CategoryConfigResponse is the API shape of a category config.
type CategoryConfigResponse struct {
	ID             int64  `json:"id"`
	CategoryTypeID int64  `json:"categoryTypeId"`
	CategorySlug   string `json:"categorySlug"`

	IsCapacityBased bool `json:"isCapacityBased"`
	MaxAnimals      int  `json:"maxAnimals"`

	BufferBeforeMinutes         int  `json:"bufferBeforeMinutes"`
	BufferAfterMinutes          int  `json:"bufferAfterMinutes"`
	EnableDurationBasedBlocking bool `json:"enableDurationBasedBlocking"`

	AllowedPriceUnits []string `json:"allowedPriceUnits"`
	BillingType       string   `json:"billingType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryConfigListResponse wraps a list of configs.
type CategoryConfigListResponse struct {
	Configs []CategoryConfigResponse `json:"configs"`
}

// FromDomainConfig converts a domain config into the API shape.
func FromDomainConfig(c *domain.CategoryConfig) *CategoryConfigResponse {
	if c == nil {
		return nil
	}

	units := make([]string, len(c.AllowedPriceUnits))
	for i, u := range c.AllowedPriceUnits {
		units[i] = string(u)
	}

	return &CategoryConfigResponse{
		ID:                          c.ID,
		CategoryTypeID:              c.CategoryTypeID,
		CategorySlug:                c.CategorySlug,
		IsCapacityBased:             c.IsCapacityBased,
		MaxAnimals:                  c.MaxAnimals,
		BufferBeforeMinutes:         c.BufferBeforeMinutes,
		BufferAfterMinutes:          c.BufferAfterMinutes,
		EnableDurationBasedBlocking: c.EnableDurationBasedBlocking,
		AllowedPriceUnits:           units,
		BillingType:                 string(c.BillingType),
		CreatedAt:                   c.CreatedAt,
		UpdatedAt:                   c.UpdatedAt,
	}
}

// FromDomainConfigList converts a list of domain configs.
func FromDomainConfigList(configs []*domain.CategoryConfig) *CategoryConfigListResponse {
	resp := &CategoryConfigListResponse{
		Configs: make([]CategoryConfigResponse, 0, len(configs)),
	}
	for _, c := range configs {
		if cr := FromDomainConfig(c); cr != nil {
			resp.Configs = append(resp.Configs, *cr)
		}
	}
	return resp
}
