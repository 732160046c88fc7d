package set_availability

import "github.com/pawfinder/PF-SchedulingService/internal/service/availability/models"

// SetAvailabilityRequest is the request body. The provider ID comes
// from the URL, not the body.
type SetAvailabilityRequest struct {
	Date           string                   `json:"date"`
	CategoryTypeID *int64                   `json:"categoryTypeId,omitempty"`
	Status         string                   `json:"status"`
	TimeSlots      []models.TimeSlotPayload `json:"timeSlots,omitempty"`
	Reason         *string                  `json:"reason,omitempty"`
}

func (r *SetAvailabilityRequest) ToServiceRequest(providerID int64) *models.SetDayRequest {
	return &models.SetDayRequest{
		ProviderID:     providerID,
		Date:           r.Date,
		CategoryTypeID: r.CategoryTypeID,
		Status:         r.Status,
		TimeSlots:      r.TimeSlots,
		Reason:         r.Reason,
	}
}
