package cancel_mission

import (
	"fmt"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.MissionID <= 0 {
		return fmt.Errorf("%w: missionID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
