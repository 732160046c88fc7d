package accept_mission

import "fmt"

func validateRequest(req *Request) error {
	if req.MissionID <= 0 {
		return fmt.Errorf("%w: missionID must be positive", ErrInvalidInput)
	}
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	return nil
}
