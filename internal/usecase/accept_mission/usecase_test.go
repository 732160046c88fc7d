package accept_mission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfinder/PF-SchedulingService/internal/domain"
	availabilityStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	configStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/categoryconfig"
	missionStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/mission"
	"github.com/pawfinder/PF-SchedulingService/internal/integrations/notifier"
	"github.com/pawfinder/PF-SchedulingService/pkg/types"
)

type fakeMissionRepo struct {
	mission *domain.Mission
	others  []*domain.Mission
	updated *domain.MissionStatus
}

func (f *fakeMissionRepo) GetByID(_ context.Context, id int64) (*domain.Mission, error) {
	if f.mission == nil || f.mission.ID != id {
		return nil, missionStorage.ErrMissionNotFound
	}
	return f.mission, nil
}

func (f *fakeMissionRepo) GetByProviderWithFilter(_ context.Context, _ domain.MissionFilter) ([]*domain.Mission, error) {
	missions := append([]*domain.Mission{}, f.others...)
	if f.mission != nil {
		missions = append(missions, f.mission)
	}
	return missions, nil
}

func (f *fakeMissionRepo) UpdateStatus(_ context.Context, _ int64, status domain.MissionStatus) error {
	f.updated = &status
	return nil
}

type fakeAvailabilityRepo struct {
	entry *domain.AvailabilityEntry
}

func (f *fakeAvailabilityRepo) GetForDay(_ context.Context, _ int64, _ time.Time, _ *int64) (*domain.AvailabilityEntry, error) {
	if f.entry == nil {
		return nil, availabilityStorage.ErrEntryNotFound
	}
	return f.entry, nil
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

type fakePayments struct {
	pending bool
	err     error
}

func (f *fakePayments) IsPaymentPending(_ context.Context, _ int64) (bool, error) {
	return f.pending, f.err
}

type fakeNotifier struct {
	events []notifier.MissionEvent
}

func (f *fakeNotifier) NotifyAsync(event notifier.MissionEvent) {
	f.events = append(f.events, event)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var testDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

func pendingMission() *domain.Mission {
	return &domain.Mission{
		ID:           5,
		ProviderID:   1,
		ClientID:     2,
		CategorySlug: "dog-walking",
		StartDate:    testDate,
		EndDate:      testDate,
		AnimalCount:  1,
		SessionType:  domain.SessionIndividual,
		Status:       domain.StatusPendingAcceptance,
	}
}

type fixture struct {
	uc           *UseCase
	missions     *fakeMissionRepo
	availability *fakeAvailabilityRepo
	config       *fakeConfigRepo
	notifier     *fakeNotifier
}

func newFixture(mission *domain.Mission, pay *fakePayments) *fixture {
	f := &fixture{
		missions:     &fakeMissionRepo{mission: mission},
		availability: &fakeAvailabilityRepo{entry: &domain.AvailabilityEntry{Date: testDate, Status: domain.DayAvailable}},
		config:       &fakeConfigRepo{},
		notifier:     &fakeNotifier{},
	}
	f.uc = NewUseCase(f.missions, f.availability, f.config, pay, f.notifier, fakeTxManager{}, nopLogger{})
	return f
}

func TestAcceptMissionPaid(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{pending: false})

	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
	require.NotNil(t, f.missions.updated)
	assert.Equal(t, domain.StatusUpcoming, *f.missions.updated)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notifier.EventMissionAccepted, f.notifier.events[0].Event)
	assert.Equal(t, string(domain.StatusUpcoming), f.notifier.events[0].Status)
}

func TestAcceptMissionPaymentPending(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{pending: true})

	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingConfirmation), resp.Status)
	require.NotNil(t, f.missions.updated)
	assert.Equal(t, domain.StatusPendingConfirmation, *f.missions.updated)
}

func TestAcceptMissionPaymentServiceDegraded(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{err: errors.New("connection refused")})

	// A degraded payment service must not block acceptance; the mission
	// parks in pending_confirmation instead.
	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPendingConfirmation), resp.Status)
}

func TestAcceptMissionConflictWhenWindowTaken(t *testing.T) {
	// A competing timed mission got accepted between request and accept:
	// this timeless mission needs the whole day and must now fail.
	f := newFixture(pendingMission(), &fakePayments{})
	f.missions.others = []*domain.Mission{{
		ID:        9,
		StartDate: testDate,
		EndDate:   testDate,
		StartTime: timePtr(t, "10:00"),
		EndTime:   timePtr(t, "11:00"),
		Status:    domain.StatusUpcoming,
	}}

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, f.missions.updated)
	assert.Empty(t, f.notifier.events)
}

func TestAcceptMissionTimedOnPartialDayWithBuffers(t *testing.T) {
	// The declared window exactly covers the mission's raw times. The
	// admissibility rule matches the request path: buffers pad the busy
	// check, not the fit against the declared calendar, so an unchanged
	// schedule accepts what it admitted.
	mission := pendingMission()
	mission.StartTime = timePtr(t, "10:00")
	mission.EndTime = timePtr(t, "11:00")
	f := newFixture(mission, &fakePayments{})
	f.config.cfg = &domain.CategoryConfig{
		CategoryTypeID:      7,
		BufferBeforeMinutes: 30,
		BufferAfterMinutes:  30,
	}
	f.availability.entry = &domain.AvailabilityEntry{
		Date:   testDate,
		Status: domain.DayPartial,
		TimeSlots: []domain.TimeSlot{
			{StartTime: *timePtr(t, "10:00"), EndTime: *timePtr(t, "11:00")},
		},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
}

func TestAcceptMissionTimelessOnPartialDayConflicts(t *testing.T) {
	// A whole-day mission needs the whole day declared open.
	f := newFixture(pendingMission(), &fakePayments{})
	f.availability.entry = &domain.AvailabilityEntry{
		Date:   testDate,
		Status: domain.DayPartial,
		TimeSlots: []domain.TimeSlot{
			{StartTime: *timePtr(t, "09:00"), EndTime: *timePtr(t, "17:00")},
		},
	}

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAcceptMissionConflictWhenDayClosed(t *testing.T) {
	// The provider withdrew the day after the request came in.
	f := newFixture(pendingMission(), &fakePayments{})
	f.availability.entry = nil

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, f.missions.updated)
}

func TestAcceptMissionConflictWhenCapacityGone(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{})
	f.config.cfg = &domain.CategoryConfig{CategoryTypeID: 7, IsCapacityBased: true, MaxAnimals: 2}
	f.missions.others = []*domain.Mission{{
		ID:          9,
		StartDate:   testDate,
		EndDate:     testDate,
		AnimalCount: 2,
		Status:      domain.StatusUpcoming,
	}}

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAcceptMissionCapacityStillFree(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{})
	f.config.cfg = &domain.CategoryConfig{CategoryTypeID: 7, IsCapacityBased: true, MaxAnimals: 3}
	f.missions.others = []*domain.Mission{{
		ID:          9,
		StartDate:   testDate,
		EndDate:     testDate,
		AnimalCount: 2,
		Status:      domain.StatusUpcoming,
	}}

	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
}

func TestAcceptMissionCollectiveSkipsRevalidation(t *testing.T) {
	// Collective spots are held by the slot bookings from request time,
	// so acceptance does not re-check the day calendar.
	mission := pendingMission()
	mission.SessionType = domain.SessionCollective
	mission.CollectiveSlotIDs = []int64{10}
	f := newFixture(mission, &fakePayments{})
	f.availability.entry = nil

	resp, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
}

func TestAcceptMissionNotFound(t *testing.T) {
	f := newFixture(nil, &fakePayments{})

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestAcceptMissionAccessDenied(t *testing.T) {
	f := newFixture(pendingMission(), &fakePayments{})

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, f.missions.updated)
	assert.Empty(t, f.notifier.events)
}

func TestAcceptMissionInvalidTransition(t *testing.T) {
	for _, status := range []domain.MissionStatus{
		domain.StatusUpcoming, domain.StatusInProgress,
		domain.StatusCompleted, domain.StatusRefused, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			mission := pendingMission()
			mission.Status = status
			f := newFixture(mission, &fakePayments{})

			_, err := f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 1})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, f.missions.updated)
		})
	}
}

func TestAcceptMissionValidation(t *testing.T) {
	f := newFixture(nil, &fakePayments{})

	_, err := f.uc.Execute(context.Background(), &Request{MissionID: 0, ProviderID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{MissionID: 5, ProviderID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
