package domain

import (
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// MissionStatus represents the lifecycle status of a mission.
type MissionStatus string

const (
	StatusPendingAcceptance   MissionStatus = "pending_acceptance"
	StatusPendingConfirmation MissionStatus = "pending_confirmation"
	StatusUpcoming            MissionStatus = "upcoming"
	StatusInProgress          MissionStatus = "in_progress"
	StatusCompleted           MissionStatus = "completed"
	StatusRefused             MissionStatus = "refused"
	StatusCancelled           MissionStatus = "cancelled"
)

// SessionType distinguishes individual bookings from collective
// (fixed-time group session) bookings.
type SessionType string

const (
	SessionIndividual SessionType = "individual"
	SessionCollective SessionType = "collective"
)

// Mission represents a booking occupying provider time or capacity.
type Mission struct {
	ID             int64
	ProviderID     int64
	ClientID       int64
	CategorySlug   string
	CategoryTypeID int64
	VariantID      int64

	// Inclusive date range; single-day missions have StartDate == EndDate.
	StartDate time.Time
	EndDate   time.Time

	// Optional wall-clock window; absent for day/week/month-unit bookings.
	StartTime *types.TimeString
	EndTime   *types.TimeString

	AnimalCount int
	SessionType SessionType

	// Referenced collective slots, populated when SessionType is collective.
	CollectiveSlotIDs []int64

	Status MissionStatus

	// Client-facing total and derived provider share, in minor currency units.
	Amount            int64
	AnnouncerEarnings int64

	Notes              *string
	CompletionNotes    *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying reports whether the mission counts against provider
// capacity or exclusivity. Refused and cancelled missions do not occupy.
func (m *Mission) IsOccupying() bool {
	return m.Status != StatusRefused && m.Status != StatusCancelled
}

// IsTerminal reports whether the mission reached a final status.
// Terminal missions are immutable except for audit fields.
func (m *Mission) IsTerminal() bool {
	return m.Status == StatusCompleted || m.Status == StatusRefused || m.Status == StatusCancelled
}

// IsCollective reports whether the mission books collective slots.
func (m *Mission) IsCollective() bool {
	return m.SessionType == SessionCollective
}

// CoversDate reports whether date falls inside the mission's date range.
// Only the calendar day matters; time components are ignored.
func (m *Mission) CoversDate(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(m.StartDate)) && !d.After(dateOnly(m.EndDate))
}

// HasTimeWindow reports whether the mission carries a wall-clock window.
func (m *Mission) HasTimeWindow() bool {
	return m.StartTime != nil && m.EndTime != nil
}

// missionTransitions is the legal transition table of the mission state
// machine. A missing source state means no transition leaves it.
var missionTransitions = map[MissionStatus][]MissionStatus{
	StatusPendingAcceptance:   {StatusUpcoming, StatusPendingConfirmation, StatusRefused},
	StatusPendingConfirmation: {StatusUpcoming, StatusRefused, StatusCancelled},
	StatusUpcoming:            {StatusInProgress, StatusCancelled},
	StatusInProgress:          {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether the state machine allows moving a
// mission from one status to another.
func CanTransition(from, to MissionStatus) bool {
	for _, allowed := range missionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidMissionStatus reports whether s is a known mission status.
func ValidMissionStatus(s MissionStatus) bool {
	switch s {
	case StatusPendingAcceptance, StatusPendingConfirmation, StatusUpcoming,
		StatusInProgress, StatusCompleted, StatusRefused, StatusCancelled:
		return true
	}
	return false
}

// MissionFilter selects provider missions for list and occupancy queries.
type MissionFilter struct {
	ProviderID      int64          // required
	CategoryTypeID  *int64         // optional category scope
	ClientID        *int64         // optional client scope
	StartDate       *time.Time     // optional period start (missions overlapping the period)
	EndDate         *time.Time     // optional period end
	Status          *MissionStatus // optional exact status
	IncludeInactive bool           // include refused/cancelled when Status is nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
