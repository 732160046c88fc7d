package domain

// Default configuration values applied when a category has no config.
const (
	DefaultBufferBeforeMinutes = 0
	DefaultBufferAfterMinutes  = 0
	DefaultMaxAnimals          = 1
)

// Business validation constants
const (
	MinBufferMinutes            = 0
	MaxBufferMinutes            = 240 // 4 hours
	MinMaxAnimals               = 1
	MaxMaxAnimals               = 50
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxReasonLength             = 500

	// MaxCalendarRangeDays caps a single calendar range query.
	MaxCalendarRangeDays = 92
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses lists mission statuses that count against provider
// capacity and exclusivity.
var OccupyingStatuses = []MissionStatus{
	StatusPendingAcceptance,
	StatusPendingConfirmation,
	StatusUpcoming,
	StatusInProgress,
	StatusCompleted,
}

// InactiveStatuses lists mission statuses that free their capacity.
var InactiveStatuses = []MissionStatus{
	StatusRefused,
	StatusCancelled,
}

// TerminalStatuses lists final mission statuses; no transition leaves them.
var TerminalStatuses = []MissionStatus{
	StatusCompleted,
	StatusRefused,
	StatusCancelled,
}
