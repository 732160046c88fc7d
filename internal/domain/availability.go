package domain

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// AvailabilityStatus is the day-level availability of a provider for a
// category. It is both the status a provider declares and the status the
// scheduling engine computes once missions are taken into account.
type AvailabilityStatus string

const (
	DayAvailable   AvailabilityStatus = "available"
	DayPartial     AvailabilityStatus = "partial"
	DayUnavailable AvailabilityStatus = "unavailable"
)

// TimeSlot is a wall-clock window inside a single day.
type TimeSlot struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// AvailabilityEntry is a provider's explicit availability declaration
// for one date and one category. Absence of an entry means the day is
// closed (closed-by-default policy).
//
// CategoryTypeID is nil only in legacy data, where a single entry
// applied to every category; new entries are always category-scoped.
type AvailabilityEntry struct {
	ID             int64
	ProviderID     int64
	Date           time.Time
	CategoryTypeID *int64
	Status         AvailabilityStatus

	// Positive windows, populated only when Status is partial.
	TimeSlots []TimeSlot

	// Free-text reason, populated only when Status is unavailable.
	Reason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the day accepts bookings at all. A partial
// entry with no positive windows counts as closed: the provider marked
// themself limited but declared no bookable window.
func (e *AvailabilityEntry) IsOpen() bool {
	if e.Status == DayUnavailable {
		return false
	}
	if e.Status == DayPartial && len(e.TimeSlots) == 0 {
		return false
	}
	return true
}

// OpenWindows returns the declared bookable windows of the day as
// minute intervals: the whole day for an available entry, the declared
// sub-slots for a partial one, nothing for a closed day.
func (e *AvailabilityEntry) OpenWindows() []Interval {
	if !e.IsOpen() {
		return nil
	}
	if e.Status == DayAvailable {
		return []Interval{{Start: 0, End: types.MinutesPerDay}}
	}

	windows := make([]Interval, 0, len(e.TimeSlots))
	for _, slot := range e.TimeSlots {
		iv, err := slot.Interval()
		if err != nil {
			continue
		}
		windows = append(windows, iv)
	}
	return MergeIntervals(windows)
}

// Interval converts the slot to a minute interval within the day.
func (s TimeSlot) Interval() (Interval, error) {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// ValidAvailabilityStatus reports whether s is a known availability status.
func ValidAvailabilityStatus(s AvailabilityStatus) bool {
	switch s {
	case DayAvailable, DayPartial, DayUnavailable:
		return true
	}
	return false
}
