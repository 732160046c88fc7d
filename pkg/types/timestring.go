package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" format (e.g. "09:30").
// It is stored and transported as a plain string and compared by minutes
// from midnight, which keeps it independent of time zones and dates.
type TimeString string

const timeStringLayout = "15:04"

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time.
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when time arithmetic leaves the [00:00, 24:00) range.
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// minutesOrZero is used by comparison helpers, where a malformed value
// sorts as midnight rather than producing an error on every call site.
func (t TimeString) minutesOrZero() int {
	m, err := t.Minutes()
	if err != nil {
		return 0
	}
	return m
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutesOrZero() < other.minutesOrZero()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutesOrZero() > other.minutesOrZero()
}

// Equal reports whether t and other denote the same minute of the day.
func (t TimeString) Equal(other TimeString) bool {
	return t.minutesOrZero() == other.minutesOrZero()
}

// AddMinutes returns the time shifted by m minutes (m may be negative).
// Returns ErrTimeOutOfRange if the result leaves the current day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(base + m)
}
