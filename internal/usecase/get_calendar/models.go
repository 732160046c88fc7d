package get_calendar

import "time"

// Request identifies a provider, category and date range to evaluate.
type Request struct {
	ProviderID   int64
	CategorySlug string
	From         time.Time
	To           time.Time
}

// BookedSlot is one buffer-expanded occupied window of a day.
type BookedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Day is the computed schedule of one day in the range.
type Day struct {
	Date   string `json:"date"`
	Status string `json:"status"`

	BookedSlots []BookedSlot `json:"bookedSlots"`

	RemainingCapacity int `json:"remainingCapacity"`
	MaxCapacity       int `json:"maxCapacity"`
}

// Response covers every day of the requested range, in order. Days with
// no declared entry appear as unavailable rather than being omitted.
type Response struct {
	Days []Day `json:"days"`

	BufferBeforeMinutes int `json:"bufferBeforeMinutes"`
	BufferAfterMinutes  int `json:"bufferAfterMinutes"`
}
