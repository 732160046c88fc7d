package domain

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// SlotBookingStatus is the status of one booking inside a collective slot.
// It moves in lockstep with the status of the mission that owns it.
type SlotBookingStatus string

const (
	SlotBookingBooked    SlotBookingStatus = "booked"
	SlotBookingCompleted SlotBookingStatus = "completed"
	SlotBookingCancelled SlotBookingStatus = "cancelled"
	// SlotBookingSlotCancelled marks bookings voided because the provider
	// cancelled the whole slot.
	SlotBookingSlotCancelled SlotBookingStatus = "slot_cancelled"
)

// SlotBooking is one mission's reservation of animal spots in a slot.
type SlotBooking struct {
	ID          int64
	SlotID      int64
	MissionID   int64
	AnimalCount int
	Status      SlotBookingStatus
}

// CollectiveSlot is a fixed-time, fixed-capacity group session,
// independent of the per-day availability calendar.
type CollectiveSlot struct {
	ID         int64
	ProviderID int64
	VariantID  int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	MaxAnimals int

	Bookings []SlotBooking

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookedAnimals returns the number of animal spots currently reserved.
// Only bookings in status booked count against capacity.
func (s *CollectiveSlot) BookedAnimals() int {
	total := 0
	for _, b := range s.Bookings {
		if b.Status == SlotBookingBooked {
			total += b.AnimalCount
		}
	}
	return total
}

// AvailableSpots returns the number of free animal spots.
func (s *CollectiveSlot) AvailableSpots() int {
	free := s.MaxAnimals - s.BookedAnimals()
	if free < 0 {
		return 0
	}
	return free
}

// HasRoomFor reports whether n more animals fit in the slot.
func (s *CollectiveSlot) HasRoomFor(n int) bool {
	return s.BookedAnimals()+n <= s.MaxAnimals
}
