package domain

import (
	"sort"
	"time"

	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

// Interval is a half-open [Start, End) window in minutes from midnight,
// clamped to a single day. All engine arithmetic happens on intervals;
// wall-clock strings are converted once at the edges.
type Interval struct {
	Start int
	End   int
}

// IsEmpty reports whether the interval covers no time.
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Overlaps reports whether i and o share at least one minute.
// Touching boundaries do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// ContainsInclusive reports whether minute m falls inside the interval,
// boundaries included. Used for the deliberately conservative time-slot
// collision check: a candidate start exactly on a buffered boundary
// counts as booked.
func (i Interval) ContainsInclusive(m int) bool {
	return m >= i.Start && m <= i.End
}

// Intersect returns the overlap of i and o (possibly empty).
func (i Interval) Intersect(o Interval) Interval {
	out := Interval{Start: maxInt(i.Start, o.Start), End: minInt(i.End, o.End)}
	if out.IsEmpty() {
		return Interval{}
	}
	return out
}

// Clamp restricts the interval to the day boundaries.
func (i Interval) Clamp() Interval {
	return Interval{
		Start: maxInt(0, i.Start),
		End:   minInt(types.MinutesPerDay, i.End),
	}
}

// ToTimeSlot converts the interval back to wall-clock times. An interval
// ending exactly at midnight maps to "23:59".
func (i Interval) ToTimeSlot() TimeSlot {
	start, _ := types.NewTimeStringFromMinutes(i.Start)
	endMin := i.End
	if endMin >= types.MinutesPerDay {
		endMin = types.MinutesPerDay - 1
	}
	end, _ := types.NewTimeStringFromMinutes(endMin)
	return TimeSlot{StartTime: start, EndTime: end}
}

// MergeIntervals sorts the intervals and merges overlapping or touching
// ones. Empty intervals are dropped.
func MergeIntervals(intervals []Interval) []Interval {
	cleaned := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			cleaned = append(cleaned, iv)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	sort.Slice(cleaned, func(a, b int) bool { return cleaned[a].Start < cleaned[b].Start })

	merged := []Interval{cleaned[0]}
	for _, iv := range cleaned[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// totalLength sums the lengths of the (already merged) intervals.
func totalLength(intervals []Interval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.End - iv.Start
	}
	return total
}

// coveredLength returns how many minutes of the open windows are covered
// by the busy windows. Both inputs must be merged.
func coveredLength(open, busy []Interval) int {
	covered := 0
	for _, o := range open {
		for _, b := range busy {
			covered += o.Intersect(b).End - o.Intersect(b).Start
		}
	}
	return covered
}

// MissionWindow returns the mission's buffered occupation window on a
// day it covers: [startTime - bufferBefore, endTime + bufferAfter],
// clamped to the day. A mission without a wall-clock window (day, week
// or month unit bookings) blocks the whole day in exclusive mode.
func MissionWindow(m *Mission, cfg *CategoryConfig) Interval {
	if !m.HasTimeWindow() {
		return Interval{Start: 0, End: types.MinutesPerDay}
	}

	start, err := m.StartTime.Minutes()
	if err != nil {
		return Interval{Start: 0, End: types.MinutesPerDay}
	}
	end, err := m.EndTime.Minutes()
	if err != nil {
		return Interval{Start: 0, End: types.MinutesPerDay}
	}

	return Interval{
		Start: start - cfg.BufferBeforeMinutes,
		End:   end + cfg.BufferAfterMinutes,
	}.Clamp()
}

// DayStatus is the scheduling engine's verdict for one provider, one
// category and one date.
type DayStatus struct {
	Date   time.Time
	Status AvailabilityStatus

	// BookedSlots are the buffer-expanded occupied windows, merged, so
	// callers can gray out contiguous ranges without re-deriving buffers.
	// Empty for capacity-based categories.
	BookedSlots []TimeSlot

	// Capacity figures, meaningful for capacity-based categories.
	RemainingCapacity int
	MaxCapacity       int

	BufferBefore int
	BufferAfter  int
}

// ComputeDayStatus evaluates one day given the availability entry (nil
// when none exists), the occupying missions active on that date, and the
// category configuration.
//
// Decision order:
//  1. no entry, or declared unavailable, or partial without windows -> unavailable;
//  2. capacity mode: remaining = MaxAnimals - consumed animal spots;
//  3. exclusive mode: buffered mission windows tested against the
//     declared open windows (full coverage -> unavailable, any overlap
//     -> partial, none -> declared status stands).
func ComputeDayStatus(date time.Time, entry *AvailabilityEntry, missions []*Mission, cfg *CategoryConfig) DayStatus {
	result := DayStatus{
		Date:         date,
		Status:       DayUnavailable,
		BufferBefore: cfg.BufferBeforeMinutes,
		BufferAfter:  cfg.BufferAfterMinutes,
	}
	if cfg.Mode() == ModeCapacity {
		result.MaxCapacity = cfg.MaxAnimals
	}

	if entry == nil || !entry.IsOpen() {
		return result
	}

	switch cfg.Mode() {
	case ModeCapacity:
		consumed := 0
		for _, m := range missions {
			if m.IsOccupying() && m.CoversDate(date) {
				consumed += m.AnimalCount
			}
		}

		remaining := cfg.MaxAnimals - consumed
		if remaining < 0 {
			remaining = 0
		}
		result.RemainingCapacity = remaining

		switch {
		case remaining <= 0:
			result.Status = DayUnavailable
		case remaining < cfg.MaxAnimals:
			result.Status = DayPartial
		default:
			result.Status = entry.Status
		}

	case ModeExclusive:
		open := entry.OpenWindows()

		busy := make([]Interval, 0, len(missions))
		for _, m := range missions {
			if m.IsOccupying() && m.CoversDate(date) {
				busy = append(busy, MissionWindow(m, cfg))
			}
		}
		busy = MergeIntervals(busy)

		for _, iv := range busy {
			result.BookedSlots = append(result.BookedSlots, iv.ToTimeSlot())
		}

		covered := coveredLength(open, busy)
		switch {
		case covered == 0:
			result.Status = entry.Status
		case covered >= totalLength(open):
			result.Status = DayUnavailable
		default:
			result.Status = DayPartial
		}
	}

	return result
}

// RemainingCapacityForDay returns the free animal spots for one day of
// a capacity-based category. A closed day has zero capacity.
func RemainingCapacityForDay(date time.Time, entry *AvailabilityEntry, missions []*Mission, cfg *CategoryConfig) int {
	if entry == nil || !entry.IsOpen() {
		return 0
	}

	consumed := 0
	for _, m := range missions {
		if m.IsOccupying() && m.CoversDate(date) {
			consumed += m.AnimalCount
		}
	}

	remaining := cfg.MaxAnimals - consumed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BusyWindows returns the merged buffered windows of the occupying
// missions active on date. Used by the time-slot collision check and by
// booking admissibility.
func BusyWindows(date time.Time, missions []*Mission, cfg *CategoryConfig) []Interval {
	busy := make([]Interval, 0, len(missions))
	for _, m := range missions {
		if m.IsOccupying() && m.CoversDate(date) {
			busy = append(busy, MissionWindow(m, cfg))
		}
	}
	return MergeIntervals(busy)
}

// IsStartMinuteBooked reports whether a candidate start minute collides
// with any busy window, boundaries included.
func IsStartMinuteBooked(startMinute int, busy []Interval) bool {
	for _, iv := range busy {
		if iv.ContainsInclusive(startMinute) {
			return true
		}
	}
	return false
}

// FitsOpenWindows reports whether the candidate interval lies entirely
// inside one of the declared open windows.
func FitsOpenWindows(candidate Interval, open []Interval) bool {
	for _, o := range open {
		if candidate.Start >= o.Start && candidate.End <= o.End {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
