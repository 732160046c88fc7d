package get_remaining_capacity

import "time"

// Request identifies one provider, category and date range.
type Request struct {
	ProviderID   int64
	CategorySlug string
	From         time.Time
	To           time.Time
}

// Response reports the free animal spots across the range: the minimum
// of the per-day remaining capacities, so a booking of that size fits
// on every day.
type Response struct {
	From              string `json:"from"`
	To                string `json:"to"`
	RemainingCapacity int    `json:"remainingCapacity"`
	MaxCapacity       int    `json:"maxCapacity"`
}
