package check_time_slot

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// Request identifies a candidate start time to test.
type Request struct {
	ProviderID   int64
	CategorySlug string
	Date         time.Time
	StartTime    types.TimeString
}

// Response reports whether the start time collides with existing
// missions.
type Response struct {
	Booked bool `json:"booked"`
}
