package domain

import "time"

// BillingType defines how a category's prestations are billed.
type BillingType string

const (
	BillingHourly   BillingType = "hourly"
	BillingDaily    BillingType = "daily"
	BillingFlexible BillingType = "flexible"
)

// PriceUnit is a price granularity a category may offer.
type PriceUnit string

const (
	UnitHour  PriceUnit = "hour"
	UnitDay   PriceUnit = "day"
	UnitWeek  PriceUnit = "week"
	UnitMonth PriceUnit = "month"
)

// CategoryMode is the concurrency model of a category. The scheduling
// engine switches exhaustively on it: a category either pools capacity
// (several missions coexist up to a ceiling) or blocks exclusively (one
// mission plus buffers owns the window).
type CategoryMode int

const (
	ModeExclusive CategoryMode = iota
	ModeCapacity
)

// CategoryConfig is the per-category-type configuration consumed by the
// scheduling engine. It is owned by the admin configuration surface and
// read-only here; changes apply immediately to future computations.
type CategoryConfig struct {
	ID             int64
	CategoryTypeID int64
	CategorySlug   string

	IsCapacityBased bool
	// Simultaneous-animal ceiling, meaningful when IsCapacityBased.
	MaxAnimals int

	BufferBeforeMinutes         int
	BufferAfterMinutes          int
	EnableDurationBasedBlocking bool

	AllowedPriceUnits []PriceUnit
	BillingType       BillingType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Mode returns the concurrency model of the category.
func (c *CategoryConfig) Mode() CategoryMode {
	if c.IsCapacityBased {
		return ModeCapacity
	}
	return ModeExclusive
}

// AllowsPriceUnit reports whether the category may be priced in unit.
func (c *CategoryConfig) AllowsPriceUnit(unit PriceUnit) bool {
	for _, u := range c.AllowedPriceUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// DefaultCategoryConfig returns the configuration applied when no
// config exists for a category: exclusive, no buffers. Absence of
// configuration is never an error for the engine.
func DefaultCategoryConfig(slug string) *CategoryConfig {
	return &CategoryConfig{
		CategorySlug:    slug,
		IsCapacityBased: false,
		MaxAnimals:      DefaultMaxAnimals,
		BillingType:     BillingFlexible,
	}
}

// ValidBillingType reports whether b is a known billing type.
func ValidBillingType(b BillingType) bool {
	switch b {
	case BillingHourly, BillingDaily, BillingFlexible:
		return true
	}
	return false
}

// ValidPriceUnit reports whether u is a known price unit.
func ValidPriceUnit(u PriceUnit) bool {
	switch u {
	case UnitHour, UnitDay, UnitWeek, UnitMonth:
		return true
	}
	return false
}
