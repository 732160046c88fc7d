package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	"github.com/pawfinder/PF-SchedulingService/internal/service/availability/models"
	"github.com/pawfinder/PF-SchedulingService/pkg/ptr"
)

type fakeAvailabilityRepo struct {
	upserted *domain.AvailabilityEntry
	entries  []*domain.AvailabilityEntry
	deleted  bool
	absent   bool
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, entry *domain.AvailabilityEntry) (*domain.AvailabilityEntry, error) {
	f.upserted = entry
	saved := *entry
	saved.ID = 42
	return &saved, nil
}

func (f *fakeAvailabilityRepo) GetRange(_ context.Context, _ int64, _, _ time.Time, _ *int64) ([]*domain.AvailabilityEntry, error) {
	return f.entries, nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, _ int64, _ time.Time, _ *int64) error {
	if f.absent {
		return availabilityStorage.ErrEntryNotFound
	}
	f.deleted = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSetDayRequest() *models.SetDayRequest {
	return &models.SetDayRequest{
		ProviderID: 1,
		Date:       "2026-10-15",
		Status:     string(domain.DayPartial),
		TimeSlots: []models.TimeSlotPayload{
			{StartTime: "09:00", EndTime: "12:00"},
		},
	}
}

func TestSetDay(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.SetDay(context.Background(), validSetDayRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-10-15", resp.Date)
	assert.Equal(t, string(domain.DayPartial), resp.Status)

	require.NotNil(t, repo.upserted)
	require.Len(t, repo.upserted.TimeSlots, 1)
}

func TestSetDayValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.SetDayRequest)
	}{
		{"zero provider", func(r *models.SetDayRequest) { r.ProviderID = 0 }},
		{"unknown status", func(r *models.SetDayRequest) { r.Status = "half-open" }},
		{"slots on available day", func(r *models.SetDayRequest) { r.Status = string(domain.DayAvailable) }},
		{"slot end before start", func(r *models.SetDayRequest) {
			r.TimeSlots = []models.TimeSlotPayload{{StartTime: "12:00", EndTime: "09:00"}}
		}},
		{"bad date", func(r *models.SetDayRequest) { r.Date = "tomorrow" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})

			req := validSetDayRequest()
			tt.mutate(req)

			_, err := svc.SetDay(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetRange(t *testing.T) {
	repo := &fakeAvailabilityRepo{entries: []*domain.AvailabilityEntry{
		{ID: 1, Date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), Status: domain.DayAvailable},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetRange(context.Background(), 1, "2026-10-01", "2026-10-31", nil)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "2026-10-15", resp.Entries[0].Date)
}

func TestGetRangeInvalidPeriod(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})

	_, err := svc.GetRange(context.Background(), 1, "2026-10-31", "2026-10-01", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteDay(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.DeleteDay(context.Background(), 1, "2026-10-15", ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.True(t, repo.deleted)
}

func TestDeleteDayNotFound(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{absent: true}, nopLogger{})

	err := svc.DeleteDay(context.Background(), 1, "2026-10-15", nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
