package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to MissionStatus
		want     bool
	}{
		{StatusPendingAcceptance, StatusUpcoming, true},
		{StatusPendingAcceptance, StatusPendingConfirmation, true},
		{StatusPendingAcceptance, StatusRefused, true},
		{StatusPendingAcceptance, StatusCancelled, false},
		{StatusPendingAcceptance, StatusCompleted, false},

		{StatusPendingConfirmation, StatusUpcoming, true},
		{StatusPendingConfirmation, StatusRefused, true},
		{StatusPendingConfirmation, StatusCancelled, true},
		{StatusPendingConfirmation, StatusInProgress, false},

		{StatusUpcoming, StatusInProgress, true},
		{StatusUpcoming, StatusCancelled, true},
		{StatusUpcoming, StatusCompleted, false},
		{StatusUpcoming, StatusRefused, false},

		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusUpcoming, false},

		// Terminal statuses admit nothing.
		{StatusCompleted, StatusCancelled, false},
		{StatusRefused, StatusUpcoming, false},
		{StatusCancelled, StatusUpcoming, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestMissionIsOccupying(t *testing.T) {
	occupying := []MissionStatus{
		StatusPendingAcceptance, StatusPendingConfirmation,
		StatusUpcoming, StatusInProgress, StatusCompleted,
	}
	for _, s := range occupying {
		assert.True(t, (&Mission{Status: s}).IsOccupying(), string(s))
	}

	assert.False(t, (&Mission{Status: StatusRefused}).IsOccupying())
	assert.False(t, (&Mission{Status: StatusCancelled}).IsOccupying())
}

func TestMissionIsTerminal(t *testing.T) {
	assert.True(t, (&Mission{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Mission{Status: StatusRefused}).IsTerminal())
	assert.True(t, (&Mission{Status: StatusCancelled}).IsTerminal())
	assert.False(t, (&Mission{Status: StatusUpcoming}).IsTerminal())
	assert.False(t, (&Mission{Status: StatusPendingAcceptance}).IsTerminal())
}

func TestMissionCoversDate(t *testing.T) {
	m := &Mission{
		StartDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, m.CoversDate(time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.CoversDate(time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.CoversDate(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.CoversDate(time.Date(2026, 10, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.CoversDate(time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)))

	// Time components are ignored.
	assert.True(t, m.CoversDate(time.Date(2026, 10, 12, 23, 59, 0, 0, time.UTC)))
}
