package request_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configRepo "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	slotStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/collectiveslot"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	entries map[string]*domain.AvailabilityEntry
}

func (f *fakeAvailabilityRepo) GetForDay(_ context.Context, _ int64, date time.Time, _ *int64) (*domain.AvailabilityEntry, error) {
	entry, ok := f.entries[date.Format(domain.DateFormat)]
	if !ok {
		return nil, availabilityRepo.ErrEntryNotFound
	}
	return entry, nil
}

type fakeMissionRepo struct {
	existing []*domain.Mission
	created  *domain.Mission
}

func (f *fakeMissionRepo) Create(_ context.Context, m *domain.Mission) (*domain.Mission, error) {
	m.ID = 101
	m.CreatedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	f.created = m
	return m, nil
}

func (f *fakeMissionRepo) GetByProviderWithFilter(_ context.Context, _ domain.MissionFilter) ([]*domain.Mission, error) {
	return f.existing, nil
}

type fakeSlotRepo struct {
	slots    map[int64]*domain.CollectiveSlot
	bookings []*domain.SlotBooking
}

func (f *fakeSlotRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.CollectiveSlot, error) {
	out := make([]*domain.CollectiveSlot, 0, len(ids))
	for _, id := range ids {
		slot, ok := f.slots[id]
		if !ok {
			return nil, slotStorage.ErrSlotNotFound
		}
		out = append(out, slot)
	}
	return out, nil
}

func (f *fakeSlotRepo) AddBooking(_ context.Context, b *domain.SlotBooking) (*domain.SlotBooking, error) {
	b.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, b)
	return b, nil
}

type fakeConfigRepo struct {
	cfg *domain.CategoryConfig
}

func (f *fakeConfigRepo) GetBySlug(_ context.Context, _ string) (*domain.CategoryConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeNotifier struct {
	events []notifier.MissionEvent
}

func (f *fakeNotifier) NotifyAsync(event notifier.MissionEvent) {
	f.events = append(f.events, event)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

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

type fixture struct {
	uc           *UseCase
	availability *fakeAvailabilityRepo
	missions     *fakeMissionRepo
	slots        *fakeSlotRepo
	notifier     *fakeNotifier
}

func newFixture(cfg *domain.CategoryConfig) *fixture {
	f := &fixture{
		availability: &fakeAvailabilityRepo{entries: map[string]*domain.AvailabilityEntry{}},
		missions:     &fakeMissionRepo{},
		slots:        &fakeSlotRepo{slots: map[int64]*domain.CollectiveSlot{}},
		notifier:     &fakeNotifier{},
	}
	f.uc = NewUseCase(
		f.availability,
		f.missions,
		f.slots,
		&fakeConfigRepo{cfg: cfg},
		f.notifier,
		fakeTxManager{},
		domain.PercentCommission{RateBasisPoints: 2000},
		nopLogger{},
	)
	f.uc.timeProvider = fixedClock{now: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	return f
}

func validRequest(t *testing.T) *Request {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	return &Request{
		ProviderID:   1,
		ClientID:     2,
		CategorySlug: "dog-walking",
		StartDate:    date,
		EndDate:      date,
		StartTime:    timePtr(t, "10:00"),
		EndTime:      timePtr(t, "11:00"),
		AnimalCount:  1,
		SessionType:  string(domain.SessionIndividual),
		Amount:       10000,
	}
}

func openDay(date string) map[string]*domain.AvailabilityEntry {
	return map[string]*domain.AvailabilityEntry{
		date: {Status: domain.DayAvailable},
	}
}

func TestRequestBookingSuccess(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7, CategorySlug: "dog-walking"}
	f := newFixture(cfg)
	f.availability.entries = openDay("2026-10-15")

	resp, err := f.uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPendingAcceptance), resp.Status)
	assert.Equal(t, int64(10000), resp.Amount)
	assert.Equal(t, int64(8000), resp.AnnouncerEarnings)

	require.NotNil(t, f.missions.created)
	assert.Equal(t, int64(7), f.missions.created.CategoryTypeID)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notifier.EventMissionRequested, f.notifier.events[0].Event)
	assert.Equal(t, int64(101), f.notifier.events[0].MissionID)
}

func TestRequestBookingClosedByDefault(t *testing.T) {
	f := newFixture(&domain.CategoryConfig{CategoryTypeID: 7})

	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrDayClosed)
	assert.Nil(t, f.missions.created)
	assert.Empty(t, f.notifier.events)
}

func TestRequestBookingPastDate(t *testing.T) {
	f := newFixture(&domain.CategoryConfig{CategoryTypeID: 7})

	req := validRequest(t)
	req.StartDate = time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	req.EndDate = req.StartDate

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRequestBookingExclusiveConflict(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &domain.CategoryConfig{CategoryTypeID: 7, BufferBeforeMinutes: 30, BufferAfterMinutes: 30}

	existing := func(start, end string, status domain.MissionStatus) *domain.Mission {
		return &domain.Mission{
			StartDate: date,
			EndDate:   date,
			StartTime: timePtr(t, start),
			EndTime:   timePtr(t, end),
			Status:    status,
		}
	}

	tests := []struct {
		name     string
		existing []*domain.Mission
		wantErr  error
	}{
		{"direct overlap", []*domain.Mission{existing("10:30", "11:30", domain.StatusUpcoming)}, ErrSlotNotAvailable},
		{"buffer collision", []*domain.Mission{existing("11:15", "12:00", domain.StatusUpcoming)}, ErrSlotNotAvailable},
		{"cancelled mission does not block", []*domain.Mission{existing("10:00", "11:00", domain.StatusCancelled)}, nil},
		{"far enough apart", []*domain.Mission{existing("13:00", "14:00", domain.StatusUpcoming)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(cfg)
			f.availability.entries = openDay("2026-10-15")
			f.missions.existing = tt.existing

			_, err := f.uc.Execute(context.Background(), validRequest(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequestBookingTimedOutsideOpenWindows(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7}
	f := newFixture(cfg)
	f.availability.entries = map[string]*domain.AvailabilityEntry{
		"2026-10-15": {
			Status: domain.DayPartial,
			TimeSlots: []domain.TimeSlot{
				{StartTime: *timePtr(t, "14:00"), EndTime: *timePtr(t, "18:00")},
			},
		},
	}

	// 10:00-11:00 falls outside the declared afternoon window.
	_, err := f.uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRequestBookingTimelessNeedsWholeDayOpen(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7}
	f := newFixture(cfg)
	f.availability.entries = map[string]*domain.AvailabilityEntry{
		"2026-10-15": {
			Status: domain.DayPartial,
			TimeSlots: []domain.TimeSlot{
				{StartTime: *timePtr(t, "09:00"), EndTime: *timePtr(t, "18:00")},
			},
		},
	}

	req := validRequest(t)
	req.StartTime = nil
	req.EndTime = nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRequestBookingCapacity(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	cfg := &domain.CategoryConfig{CategoryTypeID: 7, IsCapacityBased: true, MaxAnimals: 3}

	tests := []struct {
		name     string
		consumed int
		request  int
		wantErr  error
	}{
		{"fits", 1, 2, nil},
		{"takes the last spot", 2, 1, nil},
		{"over capacity", 2, 2, ErrInsufficientCapacity},
		{"full day", 3, 1, ErrInsufficientCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(cfg)
			f.availability.entries = openDay("2026-10-15")
			if tt.consumed > 0 {
				f.missions.existing = []*domain.Mission{{
					StartDate:   date,
					EndDate:     date,
					AnimalCount: tt.consumed,
					Status:      domain.StatusUpcoming,
				}}
			}

			req := validRequest(t)
			req.StartTime = nil
			req.EndTime = nil
			req.AnimalCount = tt.request

			_, err := f.uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequestBookingMultiDayPeriod(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7, IsCapacityBased: true, MaxAnimals: 2}
	f := newFixture(cfg)
	// Middle day missing: the whole request must fail.
	f.availability.entries = map[string]*domain.AvailabilityEntry{
		"2026-10-15": {Status: domain.DayAvailable},
		"2026-10-17": {Status: domain.DayAvailable},
	}

	req := validRequest(t)
	req.StartTime = nil
	req.EndTime = nil
	req.EndDate = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDayClosed)
	assert.Nil(t, f.missions.created)
}

func TestRequestBookingCollective(t *testing.T) {
	cfg := &domain.CategoryConfig{CategoryTypeID: 7}
	slot := func(id, providerID int64, max int, booked int) *domain.CollectiveSlot {
		s := &domain.CollectiveSlot{
			ID:         id,
			ProviderID: providerID,
			MaxAnimals: max,
		}
		if booked > 0 {
			s.Bookings = []domain.SlotBooking{{AnimalCount: booked, Status: domain.SlotBookingBooked}}
		}
		return s
	}

	collectiveRequest := func(slotIDs ...int64) *Request {
		req := validRequest(t)
		req.SessionType = string(domain.SessionCollective)
		req.CollectiveSlotIDs = slotIDs
		return req
	}

	t.Run("success books every slot", func(t *testing.T) {
		f := newFixture(cfg)
		f.slots.slots[10] = slot(10, 1, 5, 2)
		f.slots.slots[11] = slot(11, 1, 5, 0)

		resp, err := f.uc.Execute(context.Background(), collectiveRequest(10, 11))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPendingAcceptance), resp.Status)

		require.Len(t, f.slots.bookings, 2)
		for _, b := range f.slots.bookings {
			assert.Equal(t, int64(101), b.MissionID)
			assert.Equal(t, domain.SlotBookingBooked, b.Status)
		}
	})

	t.Run("full slot rejects the request", func(t *testing.T) {
		f := newFixture(cfg)
		f.slots.slots[10] = slot(10, 1, 2, 2)

		_, err := f.uc.Execute(context.Background(), collectiveRequest(10))
		assert.ErrorIs(t, err, ErrSlotFull)
		assert.Empty(t, f.slots.bookings)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(cfg)

		_, err := f.uc.Execute(context.Background(), collectiveRequest(99))
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("slot of another provider", func(t *testing.T) {
		f := newFixture(cfg)
		f.slots.slots[10] = slot(10, 42, 5, 0)

		_, err := f.uc.Execute(context.Background(), collectiveRequest(10))
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestRequestBookingValidation(t *testing.T) {
	f := newFixture(&domain.CategoryConfig{CategoryTypeID: 7})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing provider", func(r *Request) { r.ProviderID = 0 }},
		{"missing category", func(r *Request) { r.CategorySlug = "" }},
		{"end before start", func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }},
		{"zero animals", func(r *Request) { r.AnimalCount = 0 }},
		{"negative amount", func(r *Request) { r.Amount = -1 }},
		{"unknown session type", func(r *Request) { r.SessionType = "group" }},
		{"individual with slot ids", func(r *Request) { r.CollectiveSlotIDs = []int64{1} }},
		{"collective without slot ids", func(r *Request) {
			r.SessionType = string(domain.SessionCollective)
			r.CollectiveSlotIDs = nil
		}},
		{"start time without end time", func(r *Request) { r.EndTime = nil }},
		{"start after end", func(r *Request) {
			r.StartTime = timePtr(t, "12:00")
			r.EndTime = timePtr(t, "10:00")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
