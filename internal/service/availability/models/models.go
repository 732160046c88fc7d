package models

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// TimeSlotPayload is one declared window inside a day.
type TimeSlotPayload struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`
}

// SetDayRequest declares a provider's availability for one date and
// category.
type SetDayRequest struct {
	ProviderID     int64             `json:"providerId"`
	Date           string            `json:"date"` // "2025-10-15"
	CategoryTypeID *int64            `json:"categoryTypeId,omitempty"`
	Status         string            `json:"status"`
	TimeSlots      []TimeSlotPayload `json:"timeSlots,omitempty"`
	Reason         *string           `json:"reason,omitempty"`
}

// ToDomain converts the request into a domain entry.
func (r *SetDayRequest) ToDomain() (*domain.AvailabilityEntry, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(s.EndTime)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.TimeSlot{StartTime: start, EndTime: end})
	}

	return &domain.AvailabilityEntry{
		ProviderID:     r.ProviderID,
		Date:           date,
		CategoryTypeID: r.CategoryTypeID,
		Status:         domain.AvailabilityStatus(r.Status),
		TimeSlots:      slots,
		Reason:         r.Reason,
	}, nil
}

// EntryResponse is the API shape of an availability entry.
type EntryResponse struct {
	ID             int64             `json:"id"`
	ProviderID     int64             `json:"providerId"`
	Date           string            `json:"date"`
	CategoryTypeID *int64            `json:"categoryTypeId,omitempty"`
	Status         string            `json:"status"`
	TimeSlots      []TimeSlotPayload `json:"timeSlots,omitempty"`
	Reason         *string           `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntryListResponse wraps a list of entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// FromDomainEntry converts a domain entry into the API shape.
func FromDomainEntry(e *domain.AvailabilityEntry) *EntryResponse {
	if e == nil {
		return nil
	}

	slots := make([]TimeSlotPayload, 0, len(e.TimeSlots))
	for _, s := range e.TimeSlots {
		slots = append(slots, TimeSlotPayload{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &EntryResponse{
		ID:             e.ID,
		ProviderID:     e.ProviderID,
		Date:           e.Date.Format(domain.DateFormat),
		CategoryTypeID: e.CategoryTypeID,
		Status:         string(e.Status),
		TimeSlots:      slots,
		Reason:         e.Reason,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// FromDomainEntryList converts a list of domain entries.
func FromDomainEntryList(entries []*domain.AvailabilityEntry) *EntryListResponse {
	resp := &EntryListResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		if er := FromDomainEntry(e); er != nil {
			resp.Entries = append(resp.Entries, *er)
		}
	}
	return resp
}
