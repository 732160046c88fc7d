package get_remaining_capacity

import (
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.CategorySlug == "" {
		return fmt.Errorf("%w: categorySlug is required", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if daysBetween(req.From, req.To) >= domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, domain.MaxCalendarRangeDays)
	}
	return nil
}
