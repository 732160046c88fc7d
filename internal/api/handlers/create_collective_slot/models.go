package create_collective_slot

import "github.com/pawfinder/PF-SchedulingService/internal/service/slots/models"

// CreateSlotRequest is the request body. The provider ID comes from
// the URL, not the body.
type CreateSlotRequest struct {
	VariantID  int64  `json:"variantId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MaxAnimals int    `json:"maxAnimals"`
}

func (r *CreateSlotRequest) ToServiceRequest(providerID int64) *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		ProviderID: providerID,
		VariantID:  r.VariantID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		MaxAnimals: r.MaxAnimals,
	}
}
