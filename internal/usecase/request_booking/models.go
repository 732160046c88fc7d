package request_booking

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// Request carries a client's booking request.
type Request struct {
	ProviderID   int64
	ClientID     int64
	CategorySlug string
	VariantID    int64

	// Inclusive date range; single-day bookings repeat the same date.
	StartDate time.Time
	EndDate   time.Time

	// Optional wall-clock window; absent for day/week/month unit bookings.
	StartTime *types.TimeString
	EndTime   *types.TimeString

	AnimalCount int
	SessionType string

	// Referenced collective slots, required for collective sessions.
	CollectiveSlotIDs []int64

	// Client-facing total in minor currency units.
	Amount int64

	Notes *string
}

// Response is the created mission.
type Response struct {
	ID         int64  `json:"id"`
	ProviderID int64  `json:"providerId"`
	ClientID   int64  `json:"clientId"`
	Status     string `json:"status"`

	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`

	AnimalCount int    `json:"animalCount"`
	SessionType string `json:"sessionType"`

	Amount            int64 `json:"amount"`
	AnnouncerEarnings int64 `json:"announcerEarnings"`

	CreatedAt time.Time `json:"createdAt"`
}
