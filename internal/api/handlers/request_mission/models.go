package request_mission

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	requestBooking "github.com/pawfinder/PF-SchedulingService/internal/usecase/request_booking"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// RequestMissionRequest is the HTTP request model.
type RequestMissionRequest struct {
	ProviderID   int64  `json:"providerId"`
	CategorySlug string `json:"categorySlug"`
	VariantID    int64  `json:"variantId"`

	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	EndTime   *string `json:"endTime,omitempty"`

	AnimalCount int    `json:"animalCount"`
	SessionType string `json:"sessionType"`

	CollectiveSlotIDs []int64 `json:"collectiveSlotIds,omitempty"`

	Amount int64   `json:"amount"`
	Notes  *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP request, parsing dates and times.
func (r *RequestMissionRequest) ToUseCaseRequest(clientID int64) (*requestBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	var startTime, endTime *types.TimeString
	if r.StartTime != nil {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		startTime = ptr.Ptr(t)
	}
	if r.EndTime != nil {
		t, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = ptr.Ptr(t)
	}

	return &requestBooking.Request{
		ProviderID:        r.ProviderID,
		ClientID:          clientID,
		CategorySlug:      r.CategorySlug,
		VariantID:         r.VariantID,
		StartDate:         startDate,
		EndDate:           endDate,
		StartTime:         startTime,
		EndTime:           endTime,
		AnimalCount:       r.AnimalCount,
		SessionType:       r.SessionType,
		CollectiveSlotIDs: r.CollectiveSlotIDs,
		Amount:            r.Amount,
		Notes:             r.Notes,
	}, nil
}
