package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func timePtr(t *testing.T, s string) *types.TimeString {
	t.Helper()
	ts := mustTime(t, s)
	return &ts
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{60, 120}, Interval{180, 240}, false},
		{"touching boundaries", Interval{60, 120}, Interval{120, 180}, false},
		{"one minute shared", Interval{60, 121}, Interval{120, 180}, true},
		{"contained", Interval{60, 240}, Interval{90, 120}, true},
		{"identical", Interval{60, 120}, Interval{60, 120}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"empty", nil, nil},
		{"single", []Interval{{60, 120}}, []Interval{{60, 120}}},
		{"overlapping", []Interval{{60, 120}, {90, 180}}, []Interval{{60, 180}}},
		{"touching merge", []Interval{{60, 120}, {120, 180}}, []Interval{{60, 180}}},
		{"disjoint stay apart", []Interval{{300, 360}, {60, 120}}, []Interval{{60, 120}, {300, 360}}},
		{"empty intervals dropped", []Interval{{60, 60}, {120, 100}, {200, 260}}, []Interval{{200, 260}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeIntervals(tt.in))
		})
	}
}

func TestMissionWindow(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &CategoryConfig{BufferBeforeMinutes: 30, BufferAfterMinutes: 60}

	timed := &Mission{
		StartDate: date,
		EndDate:   date,
		StartTime: timePtr(t, "10:00"),
		EndTime:   timePtr(t, "12:00"),
	}
	assert.Equal(t, Interval{Start: 570, End: 780}, MissionWindow(timed, cfg))

	// A timeless mission blocks the whole day.
	timeless := &Mission{StartDate: date, EndDate: date}
	assert.Equal(t, Interval{Start: 0, End: types.MinutesPerDay}, MissionWindow(timeless, cfg))

	// Buffers never push past the day boundaries.
	early := &Mission{
		StartDate: date,
		EndDate:   date,
		StartTime: timePtr(t, "00:10"),
		EndTime:   timePtr(t, "23:30"),
	}
	assert.Equal(t, Interval{Start: 0, End: types.MinutesPerDay}, MissionWindow(early, cfg))
}

func TestComputeDayStatusClosedByDefault(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := DefaultCategoryConfig("dog-walking")

	// No entry means closed.
	status := ComputeDayStatus(date, nil, nil, cfg)
	assert.Equal(t, DayUnavailable, status.Status)

	// Declared unavailable stays unavailable.
	entry := &AvailabilityEntry{Status: DayUnavailable}
	status = ComputeDayStatus(date, entry, nil, cfg)
	assert.Equal(t, DayUnavailable, status.Status)

	// Partial without windows is closed too.
	entry = &AvailabilityEntry{Status: DayPartial}
	status = ComputeDayStatus(date, entry, nil, cfg)
	assert.Equal(t, DayUnavailable, status.Status)
}

func TestComputeDayStatusCapacityMode(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &CategoryConfig{IsCapacityBased: true, MaxAnimals: 5}
	entry := &AvailabilityEntry{Status: DayAvailable}

	mission := func(count int, status MissionStatus) *Mission {
		return &Mission{StartDate: date, EndDate: date, AnimalCount: count, Status: status}
	}

	tests := []struct {
		name          string
		missions      []*Mission
		wantStatus    AvailabilityStatus
		wantRemaining int
	}{
		{"no missions", nil, DayAvailable, 5},
		{"partially booked", []*Mission{mission(2, StatusUpcoming)}, DayPartial, 3},
		{"full", []*Mission{mission(3, StatusUpcoming), mission(2, StatusInProgress)}, DayUnavailable, 0},
		{"cancelled frees capacity", []*Mission{mission(5, StatusCancelled)}, DayAvailable, 5},
		{"refused frees capacity", []*Mission{mission(5, StatusRefused)}, DayAvailable, 5},
		{"completed still occupies", []*Mission{mission(5, StatusCompleted)}, DayUnavailable, 0},
		{"pending occupies", []*Mission{mission(1, StatusPendingAcceptance)}, DayPartial, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ComputeDayStatus(date, entry, tt.missions, cfg)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantRemaining, status.RemainingCapacity)
			assert.Equal(t, 5, status.MaxCapacity)
			assert.Empty(t, status.BookedSlots)
		})
	}
}

func TestComputeDayStatusExclusiveMode(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &CategoryConfig{BufferBeforeMinutes: 30, BufferAfterMinutes: 30}

	openDay := &AvailabilityEntry{Status: DayAvailable}
	morning := &AvailabilityEntry{
		Status: DayPartial,
		TimeSlots: []TimeSlot{
			{StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "12:00")},
		},
	}

	timed := func(start, end string, status MissionStatus) *Mission {
		return &Mission{
			StartDate: date,
			EndDate:   date,
			StartTime: timePtr(t, start),
			EndTime:   timePtr(t, end),
			Status:    status,
		}
	}

	t.Run("no missions keeps declared status", func(t *testing.T) {
		status := ComputeDayStatus(date, openDay, nil, cfg)
		assert.Equal(t, DayAvailable, status.Status)
	})

	t.Run("one booking makes the day partial", func(t *testing.T) {
		status := ComputeDayStatus(date, openDay, []*Mission{timed("10:00", "11:00", StatusUpcoming)}, cfg)
		assert.Equal(t, DayPartial, status.Status)
		require.Len(t, status.BookedSlots, 1)
		assert.Equal(t, "09:30", status.BookedSlots[0].StartTime.String())
		assert.Equal(t, "11:30", status.BookedSlots[0].EndTime.String())
	})

	t.Run("windows fully covered means unavailable", func(t *testing.T) {
		status := ComputeDayStatus(date, morning, []*Mission{timed("09:00", "12:00", StatusUpcoming)}, cfg)
		assert.Equal(t, DayUnavailable, status.Status)
	})

	t.Run("timeless mission blocks the day", func(t *testing.T) {
		timeless := &Mission{StartDate: date, EndDate: date, Status: StatusUpcoming}
		status := ComputeDayStatus(date, openDay, []*Mission{timeless}, cfg)
		assert.Equal(t, DayUnavailable, status.Status)
	})

	t.Run("cancelled mission leaves the day open", func(t *testing.T) {
		status := ComputeDayStatus(date, openDay, []*Mission{timed("10:00", "11:00", StatusCancelled)}, cfg)
		assert.Equal(t, DayAvailable, status.Status)
	})

	t.Run("mission on another date is ignored", func(t *testing.T) {
		other := timed("10:00", "11:00", StatusUpcoming)
		other.StartDate = date.AddDate(0, 0, 1)
		other.EndDate = other.StartDate
		status := ComputeDayStatus(date, openDay, []*Mission{other}, cfg)
		assert.Equal(t, DayAvailable, status.Status)
	})

	t.Run("adjacent buffered windows merge", func(t *testing.T) {
		missions := []*Mission{
			timed("09:00", "10:00", StatusUpcoming),
			timed("10:30", "11:30", StatusUpcoming),
		}
		status := ComputeDayStatus(date, openDay, missions, cfg)
		assert.Equal(t, DayPartial, status.Status)
		require.Len(t, status.BookedSlots, 1)
		assert.Equal(t, "08:30", status.BookedSlots[0].StartTime.String())
		assert.Equal(t, "12:00", status.BookedSlots[0].EndTime.String())
	})
}

func TestRemainingCapacityForDay(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &CategoryConfig{IsCapacityBased: true, MaxAnimals: 3}
	entry := &AvailabilityEntry{Status: DayAvailable}

	assert.Equal(t, 0, RemainingCapacityForDay(date, nil, nil, cfg))
	assert.Equal(t, 3, RemainingCapacityForDay(date, entry, nil, cfg))

	missions := []*Mission{
		{StartDate: date, EndDate: date, AnimalCount: 2, Status: StatusUpcoming},
		{StartDate: date, EndDate: date, AnimalCount: 2, Status: StatusCancelled},
	}
	assert.Equal(t, 1, RemainingCapacityForDay(date, entry, missions, cfg))

	// Overbooked days clamp to zero instead of going negative.
	missions = append(missions, &Mission{StartDate: date, EndDate: date, AnimalCount: 4, Status: StatusInProgress})
	assert.Equal(t, 0, RemainingCapacityForDay(date, entry, missions, cfg))
}

func TestIsStartMinuteBooked(t *testing.T) {
	busy := []Interval{{570, 690}}

	tests := []struct {
		name   string
		minute int
		want   bool
	}{
		{"well before", 500, false},
		{"start boundary counts", 570, true},
		{"inside", 600, true},
		{"end boundary counts", 690, true},
		{"just after", 691, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStartMinuteBooked(tt.minute, busy))
		})
	}
}

func TestFitsOpenWindows(t *testing.T) {
	open := []Interval{{540, 720}, {840, 1080}}

	assert.True(t, FitsOpenWindows(Interval{600, 660}, open))
	assert.True(t, FitsOpenWindows(Interval{540, 720}, open))
	assert.False(t, FitsOpenWindows(Interval{700, 860}, open), "spanning two windows does not fit")
	assert.False(t, FitsOpenWindows(Interval{500, 600}, open))
	assert.False(t, FitsOpenWindows(Interval{600, 660}, nil))
}

func TestBusyWindows(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &CategoryConfig{}

	missions := []*Mission{
		{StartDate: date, EndDate: date, StartTime: timePtr(t, "10:00"), EndTime: timePtr(t, "11:00"), Status: StatusUpcoming},
		{StartDate: date, EndDate: date, StartTime: timePtr(t, "10:30"), EndTime: timePtr(t, "12:00"), Status: StatusUpcoming},
		{StartDate: date, EndDate: date, StartTime: timePtr(t, "14:00"), EndTime: timePtr(t, "15:00"), Status: StatusCancelled},
	}

	busy := BusyWindows(date, missions, cfg)
	assert.Equal(t, []Interval{{600, 720}}, busy)
}

func TestEntryOpenWindows(t *testing.T) {
	available := &AvailabilityEntry{Status: DayAvailable}
	assert.Equal(t, []Interval{{0, types.MinutesPerDay}}, available.OpenWindows())

	partial := &AvailabilityEntry{
		Status: DayPartial,
		TimeSlots: []TimeSlot{
			{StartTime: mustTime(t, "14:00"), EndTime: mustTime(t, "18:00")},
			{StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "12:00")},
		},
	}
	assert.Equal(t, []Interval{{540, 720}, {840, 1080}}, partial.OpenWindows())

	closed := &AvailabilityEntry{Status: DayUnavailable}
	assert.Empty(t, closed.OpenWindows())
}
