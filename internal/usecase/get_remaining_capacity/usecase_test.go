package get_remaining_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	configStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
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

func date(day int) time.Time {
	return time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC)
}

func openDay(day int) *domain.AvailabilityEntry {
	return &domain.AvailabilityEntry{Date: date(day), Status: domain.DayAvailable}
}

func mission(day, animals int) *domain.Mission {
	return &domain.Mission{
		StartDate:   date(day),
		EndDate:     date(day),
		AnimalCount: animals,
		Status:      domain.StatusUpcoming,
	}
}

func newUseCase(entries []*domain.AvailabilityEntry, missions []*domain.Mission, cfg *domain.CategoryConfig) *UseCase {
	return NewUseCase(
		&fakeAvailabilityRepo{entries: entries},
		&fakeMissionRepo{missions: missions},
		&fakeConfigRepo{cfg: cfg},
		nopLogger{},
	)
}

func capacityConfig(max int) *domain.CategoryConfig {
	return &domain.CategoryConfig{CategoryTypeID: 7, IsCapacityBased: true, MaxAnimals: max}
}

func TestGetRemainingCapacitySingleDay(t *testing.T) {
	uc := newUseCase(
		[]*domain.AvailabilityEntry{openDay(15)},
		[]*domain.Mission{mission(15, 3)},
		capacityConfig(4),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(15),
		To:           date(15),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-10-15", resp.From)
	assert.Equal(t, "2026-10-15", resp.To)
	assert.Equal(t, 1, resp.RemainingCapacity)
	assert.Equal(t, 4, resp.MaxCapacity)
}

func TestGetRemainingCapacityRangeIsMinOverDays(t *testing.T) {
	// Day 15 has 3 of 5 booked, day 16 has 1 of 5: the range can take
	// at most 2 more animals.
	uc := newUseCase(
		[]*domain.AvailabilityEntry{openDay(15), openDay(16)},
		[]*domain.Mission{mission(15, 3), mission(16, 1)},
		capacityConfig(5),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(15),
		To:           date(16),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.RemainingCapacity)
}

func TestGetRemainingCapacityClosedDayPinsToZero(t *testing.T) {
	// Day 16 has no entry, so the whole range bottoms out at zero.
	uc := newUseCase(
		[]*domain.AvailabilityEntry{openDay(15), openDay(17)},
		nil,
		capacityConfig(4),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(15),
		To:           date(17),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.RemainingCapacity)
}

func TestGetRemainingCapacityCancelledDoesNotCount(t *testing.T) {
	cancelled := mission(15, 3)
	cancelled.Status = domain.StatusCancelled

	uc := newUseCase(
		[]*domain.AvailabilityEntry{openDay(15)},
		[]*domain.Mission{cancelled},
		capacityConfig(4),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(15),
		To:           date(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.RemainingCapacity)
}

func TestGetRemainingCapacityNotCapacityBased(t *testing.T) {
	uc := newUseCase(nil, nil, &domain.CategoryConfig{CategoryTypeID: 7})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "dog-walking",
		From:         date(15),
		To:           date(15),
	})
	assert.ErrorIs(t, err, ErrNotCapacityBased)
}

func TestGetRemainingCapacityRangeTooLarge(t *testing.T) {
	uc := newUseCase(nil, nil, capacityConfig(4))

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(1),
		To:           date(1).AddDate(0, 0, domain.MaxCalendarRangeDays+1),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestGetRemainingCapacityValidation(t *testing.T) {
	uc := newUseCase(nil, nil, capacityConfig(4))

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:   1,
		CategorySlug: "cat-sitting",
		From:         date(16),
		To:           date(15),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ProviderID:   0,
		CategorySlug: "cat-sitting",
		From:         date(15),
		To:           date(15),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
