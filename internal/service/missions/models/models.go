package models

import (
	"errors"
	"time"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string.
	ErrInvalidStatus = errors.New("invalid mission status")
)

// Request models

// GetProviderMissionsRequest filters the provider's mission list.
type GetProviderMissionsRequest struct {
	ProviderID      int64      `json:"providerId"`
	CategoryTypeID  *int64     `json:"categoryTypeId,omitempty"`
	ClientID        *int64     `json:"clientId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *GetProviderMissionsRequest) ToDomainFilter() (domain.MissionFilter, error) {
	filter := domain.MissionFilter{
		ProviderID:      r.ProviderID,
		CategoryTypeID:  r.CategoryTypeID,
		ClientID:        r.ClientID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainMissionStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetClientMissionsRequest filters the client's mission list.
type GetClientMissionsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// RefuseMissionRequest refuses a pending mission.
type RefuseMissionRequest struct {
	ProviderID int64   `json:"providerId"`
	Reason     *string `json:"reason,omitempty"`
}

// CompleteMissionRequest completes an in-progress mission.
type CompleteMissionRequest struct {
	ProviderID int64   `json:"providerId"`
	Notes      *string `json:"notes,omitempty"`
}

// Response models

// MissionResponse is the API shape of a mission.
type MissionResponse struct {
	ID             int64  `json:"id"`
	ProviderID     int64  `json:"providerId"`
	ClientID       int64  `json:"clientId"`
	CategorySlug   string `json:"categorySlug"`
	CategoryTypeID int64  `json:"categoryTypeId"`
	VariantID      int64  `json:"variantId"`

	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     string  `json:"endDate"`
	StartTime   *string `json:"startTime,omitempty"` // "10:00"
	EndTime     *string `json:"endTime,omitempty"`
	AnimalCount int     `json:"animalCount"`
	SessionType string  `json:"sessionType"`

	CollectiveSlotIDs []int64 `json:"collectiveSlotIds,omitempty"`

	Status            string `json:"status"`
	Amount            int64  `json:"amount"`
	AnnouncerEarnings int64  `json:"announcerEarnings"`

	Notes              *string `json:"notes,omitempty"`
	CompletionNotes    *string `json:"completionNotes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MissionListResponse wraps a list of missions.
type MissionListResponse struct {
	Missions []MissionResponse `json:"missions"`
}

// Conversions

// FromDomainMission converts a domain mission into the API shape.
func FromDomainMission(m *domain.Mission) *MissionResponse {
	if m == nil {
		return nil
	}

	resp := &MissionResponse{
		ID:                 m.ID,
		ProviderID:         m.ProviderID,
		ClientID:           m.ClientID,
		CategorySlug:       m.CategorySlug,
		CategoryTypeID:     m.CategoryTypeID,
		VariantID:          m.VariantID,
		StartDate:          m.StartDate.Format(domain.DateFormat),
		EndDate:            m.EndDate.Format(domain.DateFormat),
		AnimalCount:        m.AnimalCount,
		SessionType:        string(m.SessionType),
		CollectiveSlotIDs:  m.CollectiveSlotIDs,
		Status:             string(m.Status),
		Amount:             m.Amount,
		AnnouncerEarnings:  m.AnnouncerEarnings,
		Notes:              m.Notes,
		CompletionNotes:    m.CompletionNotes,
		CancellationReason: m.CancellationReason,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	if m.StartTime != nil {
		s := m.StartTime.String()
		resp.StartTime = &s
	}
	if m.EndTime != nil {
		s := m.EndTime.String()
		resp.EndTime = &s
	}
	if m.CancelledAt != nil {
		cancelledStr := m.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainMissionList converts a list of domain missions.
func FromDomainMissionList(missions []*domain.Mission) *MissionListResponse {
	resp := &MissionListResponse{
		Missions: make([]MissionResponse, 0, len(missions)),
	}

	for _, m := range missions {
		if mr := FromDomainMission(m); mr != nil {
			resp.Missions = append(resp.Missions, *mr)
		}
	}

	return resp
}

// ToDomainMissionStatus converts a status string with validation.
func ToDomainMissionStatus(status string) (domain.MissionStatus, error) {
	s := domain.MissionStatus(status)
	if !domain.ValidMissionStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
