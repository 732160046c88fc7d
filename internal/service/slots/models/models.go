package models

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// CreateSlotRequest opens a new collective slot.
type CreateSlotRequest struct {
	ProviderID int64  `json:"providerId"`
	VariantID  int64  `json:"variantId"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`
	MaxAnimals int    `json:"maxAnimals"`
}

// ListSlotsRequest filters the provider's collective slots.
type ListSlotsRequest struct {
	ProviderID int64
	VariantID  *int64
	From       time.Time
	To         time.Time
}

// SlotBookingResponse is one mission's reservation inside a slot.
type SlotBookingResponse struct {
	ID          int64  `json:"id"`
	MissionID   int64  `json:"missionId"`
	AnimalCount int    `json:"animalCount"`
	Status      string `json:"status"`
}

// SlotResponse is the API shape of a collective slot.
type SlotResponse struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"providerId"`
	VariantID  int64  `json:"variantId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MaxAnimals int    `json:"maxAnimals"`

	BookedAnimals  int `json:"bookedAnimals"`
	AvailableSpots int `json:"availableSpots"`

	Bookings []SlotBookingResponse `json:"bookings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse wraps a list of slots.
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ToDomain converts the create request into a domain slot.
func (r *CreateSlotRequest) ToDomain() (*domain.CollectiveSlot, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.CollectiveSlot{
		ProviderID: r.ProviderID,
		VariantID:  r.VariantID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		MaxAnimals: r.MaxAnimals,
	}, nil
}

// FromDomainSlot converts a domain slot into the API shape.
func FromDomainSlot(s *domain.CollectiveSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	bookings := make([]SlotBookingResponse, 0, len(s.Bookings))
	for _, b := range s.Bookings {
		bookings = append(bookings, SlotBookingResponse{
			ID:          b.ID,
			MissionID:   b.MissionID,
			AnimalCount: b.AnimalCount,
			Status:      string(b.Status),
		})
	}

	return &SlotResponse{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		VariantID:      s.VariantID,
		Date:           s.Date.Format(domain.DateFormat),
		StartTime:      s.StartTime.String(),
		EndTime:        s.EndTime.String(),
		MaxAnimals:     s.MaxAnimals,
		BookedAnimals:  s.BookedAnimals(),
		AvailableSpots: s.AvailableSpots(),
		Bookings:       bookings,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSlotList converts a list of domain slots.
func FromDomainSlotList(slots []*domain.CollectiveSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		if sr := FromDomainSlot(s); sr != nil {
			resp.Slots = append(resp.Slots, *sr)
		}
	}
	return resp
}
