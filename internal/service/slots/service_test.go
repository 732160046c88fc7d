package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	slotStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/collectiveslot"
	"github.com/pawfinder/PF-SchedulingService/internal/service/slots/models"
)

type fakeSlotRepo struct {
	slot    *domain.CollectiveSlot
	slots   []*domain.CollectiveSlot
	created *domain.CollectiveSlot
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.CollectiveSlot) (*domain.CollectiveSlot, error) {
	f.created = s
	created := *s
	created.ID = 10
	return &created, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.CollectiveSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotStorage.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) ListByProvider(_ context.Context, _ int64, _ *int64, _, _ time.Time) ([]*domain.CollectiveSlot, error) {
	return f.slots, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		ProviderID: 1,
		VariantID:  3,
		Date:       "2026-10-15",
		StartTime:  "10:00",
		EndTime:    "11:00",
		MaxAnimals: 6,
	}
}

func TestCreateSlot(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2026-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 6, resp.AvailableSpots)

	require.NotNil(t, repo.created)
	assert.Equal(t, int64(3), repo.created.VariantID)
}

func TestCreateSlotValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.CreateSlotRequest)
	}{
		{"zero provider", func(r *models.CreateSlotRequest) { r.ProviderID = 0 }},
		{"zero variant", func(r *models.CreateSlotRequest) { r.VariantID = 0 }},
		{"zero capacity", func(r *models.CreateSlotRequest) { r.MaxAnimals = 0 }},
		{"capacity above cap", func(r *models.CreateSlotRequest) { r.MaxAnimals = domain.MaxMaxAnimals + 1 }},
		{"end before start", func(r *models.CreateSlotRequest) { r.StartTime, r.EndTime = "11:00", "10:00" }},
		{"equal times", func(r *models.CreateSlotRequest) { r.EndTime = r.StartTime }},
		{"bad date", func(r *models.CreateSlotRequest) { r.Date = "15/10/2026" }},
		{"bad time", func(r *models.CreateSlotRequest) { r.StartTime = "25:00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeSlotRepo{}, nopLogger{})

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetSlotByID(t *testing.T) {
	slot := &domain.CollectiveSlot{ID: 10, ProviderID: 1, MaxAnimals: 6}
	svc := NewService(&fakeSlotRepo{slot: slot}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetSlotByIDNotFound(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestGetSlotByIDWrongProvider(t *testing.T) {
	slot := &domain.CollectiveSlot{ID: 10, ProviderID: 1}
	svc := NewService(&fakeSlotRepo{slot: slot}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestListSlotsPeriodCheck(t *testing.T) {
	svc := NewService(&fakeSlotRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{
		ProviderID: 1,
		From:       time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
