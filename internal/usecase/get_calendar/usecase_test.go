package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	entries []*domain.AvailabilityEntry
}

func (f *fakeAvailabilityRepo) GetRange(_ context.Context, _ int64, _, _ time.Time, _ *int64) ([]*domain.AvailabilityEntry, error) {
	return f.entries, nil
}

type fakeMissionRepo struct {
	missions []*domain.Mission
}

func (f *fakeMissionRepo) GetByProviderWithFilter(_ context.Context, _ domain.MissionFilter) ([]*domain.Mission, error) {
	return f.missions, nil
}

type fakeConfigRepo struct {
	cfg *domain.CategoryConfig
}

func (f *fakeConfigRepo) GetBySlug(_ context.Context, _ string) (*domain.CategoryConfig, error) {
	if f.cfg == nil {
		return nil, configStorage.ErrConfigNotFound
	}
	return f.cfg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func timePtr(t *testing.T, s string) *types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return &ts
}

func date(day int) time.Time {
	return time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC)
}

func newUseCase(entries []*domain.AvailabilityEntry, missions []*domain.Mission, cfg *domain.CategoryConfig) *UseCase {
	return NewUseCase(
		&fakeAvailabilityRepo{entries: entries},
		&fakeMissionRepo{missions: missions},
		&fakeConfigRepo{cfg: cfg},
		nopLogger{},
	)
}

func TestGetCalendarCoversEveryDay(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7}
	entries := []*domain.AvailabilityEntry{
		{Date: date(15), Status: domain.DayAvailable},
		{Date: date(17), Status: domain.DayAvailable},
	}

	uc := newUseCase(entries, nil, cfg)
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(15),
		To:           date(18),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 4)
	assert.Equal(t, "2026-10-15", resp.Days[0].Date)
	assert.Equal(t, string(domain.DayAvailable), resp.Days[0].Status)
	// Undeclared days show up as unavailable, not as gaps.
	assert.Equal(t, string(domain.DayUnavailable), resp.Days[1].Status)
	assert.Equal(t, string(domain.DayAvailable), resp.Days[2].Status)
	assert.Equal(t, string(domain.DayUnavailable), resp.Days[3].Status)
}

func TestGetCalendarAppliesMissions(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7, BufferBeforeMinutes: 15, BufferAfterMinutes: 15}
	entries := []*domain.AvailabilityEntry{
		{Date: date(15), Status: domain.DayAvailable},
		{Date: date(16), Status: domain.DayAvailable},
	}
	missions := []*domain.Mission{{
		StartDate: date(15),
		EndDate:   date(15),
		StartTime: timePtr(t, "10:00"),
		EndTime:   timePtr(t, "11:00"),
		Status:    domain.StatusUpcoming,
	}}

	uc := newUseCase(entries, missions, cfg)
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(15),
		To:           date(16),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, string(domain.DayPartial), resp.Days[0].Status)
	require.Len(t, resp.Days[0].BookedSlots, 1)
	assert.Equal(t, "09:45", resp.Days[0].BookedSlots[0].StartTime)
	assert.Equal(t, string(domain.DayAvailable), resp.Days[1].Status)
	assert.Equal(t, 15, resp.BufferBeforeMinutes)
}

func TestGetCalendarPrefersScopedEntryOverWildcard(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7}
	entries := []*domain.AvailabilityEntry{
		{Date: date(15), Status: domain.DayAvailable, CategoryTypeID: nil},
		{Date: date(15), Status: domain.DayUnavailable, CategoryTypeID: ptr.Ptr(int64(7))},
	}

	uc := newUseCase(entries, nil, cfg)
	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(15),
		To:           date(15),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, string(domain.DayUnavailable), resp.Days[0].Status)
}

func TestGetCalendarRangeTooLarge(t *testing.T) {
	uc := newUseCase(nil, nil, &domain.CategoryConfig{CategoryTypeID: 7})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(1),
		To:           date(1).AddDate(0, 0, domain.MaxCalendarRangeDays+1),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestGetCalendarValidation(t *testing.T) {
	uc := newUseCase(nil, nil, &domain.CategoryConfig{CategoryTypeID: 7})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(16),
		To:           date(15),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
