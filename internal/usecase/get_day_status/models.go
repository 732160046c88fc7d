package get_day_status

import "time"

// Request identifies one provider, category and date to evaluate.
type Request struct {
	ProviderID   int64
	CategorySlug string
	Date         time.Time
}

// BookedSlot is one buffer-expanded occupied window of the day.
type BookedSlot struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`
}

// Response is the computed schedule of the day.
type Response struct {
	Date   string `json:"date"` // "2025-10-15"
	Status string `json:"status"`

	BookedSlots []BookedSlot `json:"bookedSlots"`

	// Capacity figures, meaningful for capacity-based categories.
	RemainingCapacity int `json:"remainingCapacity"`
	MaxCapacity       int `json:"maxCapacity"`

	BufferBeforeMinutes int `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int `json:"bufferAfterMinutes"`
}
