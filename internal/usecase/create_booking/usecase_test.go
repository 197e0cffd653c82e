package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
	"github.com/m04kA/EDU-SchedulingService/pkg/ptr"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	copied := *b
	r.nextID++
	copied.ID = r.nextID
	r.bookings = append(r.bookings, &copied)
	result := copied
	return &result, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.ProviderID != nil && b.ProviderID != *filter.ProviderID {
			continue
		}
		if filter.ActiveOnly && !b.IsActive() {
			continue
		}
		if filter.OverlapsFrom != nil && filter.OverlapsTo != nil {
			if !b.StartTime.Before(*filter.OverlapsTo) || !b.EndTime.After(*filter.OverlapsFrom) {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
}

func (r *fakeAvailabilityRepo) GetByProviderAndDay(_ context.Context, providerID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range r.windows {
		if w.ProviderID == providerID && w.DayOfWeek == dayOfWeek {
			result = append(result, w)
		}
	}
	return result, nil
}

type fakeSettingsProvider struct {
	settings *domain.ProviderSettings
}

func (p *fakeSettingsProvider) GetDomain(_ context.Context, providerID int64) (*domain.ProviderSettings, error) {
	if p.settings != nil {
		return p.settings, nil
	}
	return domain.DefaultSettings(providerID), nil
}

type fakeDirectoryClient struct {
	provider *directory.Provider
	err      error
}

func (c *fakeDirectoryClient) GetProviderWithGracefulDegradation(_ context.Context, _ int64) (*directory.Provider, error) {
	return c.provider, c.err
}

type fakePaymentsClient struct {
	charges []float64
}

func (c *fakePaymentsClient) RegisterCharge(_ context.Context, _ int64, amount float64) error {
	c.charges = append(c.charges, amount)
	return nil
}

type fakeNotifyClient struct {
	created []notify.BookingCreatedEvent
}

func (c *fakeNotifyClient) BookingCreated(_ context.Context, event notify.BookingCreatedEvent) {
	c.created = append(c.created, event)
}

type testEnv struct {
	uc           *UseCase
	bookingRepo  *fakeBookingRepo
	availability *fakeAvailabilityRepo
	payments     *fakePaymentsClient
	notifier     *fakeNotifyClient
}

// now - вторник 2026-09-01 12:00 UTC; слоты бронируются на следующий вторник
var (
	testNow        = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testSlotDay    = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	testProviderID = int64(10)
	testClientID   = int64(20)
)

func newTestEnv(provider *directory.Provider, directoryErr error) *testEnv {
	bookingRepo := &fakeBookingRepo{}
	availability := &fakeAvailabilityRepo{
		windows: []*domain.AvailabilityWindow{
			{
				ID:         1,
				ProviderID: testProviderID,
				DayOfWeek:  int(testSlotDay.Weekday()),
				StartTime:  types.TimeString("09:00"),
				EndTime:    types.TimeString("18:00"),
			},
		},
	}
	payments := &fakePaymentsClient{}
	notifier := &fakeNotifyClient{}

	uc := NewUseCase(
		bookingRepo,
		availability,
		&fakeSettingsProvider{},
		&fakeDirectoryClient{provider: provider, err: directoryErr},
		payments,
		notifier,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}

	return &testEnv{
		uc:           uc,
		bookingRepo:  bookingRepo,
		availability: availability,
		payments:     payments,
		notifier:     notifier,
	}
}

func activeProvider(hourlyRate float64) *directory.Provider {
	return &directory.Provider{
		ID:         testProviderID,
		HourlyRate: ptr.Ptr(hourlyRate),
		IsActive:   true,
	}
}

func slotAt(hour, minute int) time.Time {
	return time.Date(testSlotDay.Year(), testSlotDay.Month(), testSlotDay.Day(), hour, minute, 0, 0, time.UTC)
}

func baseRequest() *Request {
	return &Request{
		ClientID:     testClientID,
		ProviderID:   testProviderID,
		ServiceType:  "math tutoring",
		StartTime:    slotAt(14, 0),
		Participants: 1,
	}
}

func TestExecute(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	req := baseRequest()
	req.DurationMinutes = ptr.Ptr(120)
	req.Participants = 3

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, slotAt(14, 0), resp.StartTime)
	assert.Equal(t, slotAt(16, 0), resp.EndTime)
	assert.Equal(t, 120, resp.DurationMinutes)
	// 50 * 2h * (1 + 2*0.3) = 160
	assert.Equal(t, 160.0, resp.Price)

	require.Len(t, env.payments.charges, 1)
	assert.Equal(t, 160.0, env.payments.charges[0])

	require.Len(t, env.notifier.created, 1)
	assert.Equal(t, resp.ID, env.notifier.created[0].BookingID)
	assert.Equal(t, 160.0, env.notifier.created[0].Price)
}

func TestExecuteDefaultDuration(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	resp, err := env.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, slotAt(15, 0), resp.EndTime)
	assert.Equal(t, 50.0, resp.Price)
}

func TestExecuteBufferConflict(t *testing.T) {
	// существующее бронирование 14:00-15:00, буфер 15 минут
	cases := []struct {
		name      string
		startHour int
		startMin  int
		wantErr   error
	}{
		{name: "inside buffer is rejected", startHour: 15, startMin: 10, wantErr: ErrSlotConflict},
		{name: "right after buffer is accepted", startHour: 15, startMin: 15},
		{name: "same slot is rejected", startHour: 14, startMin: 0, wantErr: ErrSlotConflict},
		{name: "before with buffer gap is accepted", startHour: 12, startMin: 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(activeProvider(50), nil)

			first := baseRequest()
			_, err := env.uc.Execute(context.Background(), first)
			require.NoError(t, err)

			second := baseRequest()
			second.ClientID = testClientID + 1
			second.StartTime = slotAt(tc.startHour, tc.startMin)

			_, err = env.uc.Execute(context.Background(), second)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecuteCancelledBookingDoesNotConflict(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	env.bookingRepo.bookings = append(env.bookingRepo.bookings, &domain.Booking{
		ID:         99,
		ProviderID: testProviderID,
		ClientID:   30,
		StartTime:  slotAt(14, 0),
		EndTime:    slotAt(15, 0),
		Status:     domain.StatusCancelled,
	})

	_, err := env.uc.Execute(context.Background(), baseRequest())
	assert.NoError(t, err)
}

func TestExecuteOutsideAvailability(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	cases := []struct {
		name  string
		start time.Time
	}{
		{name: "before window", start: slotAt(8, 0)},
		{name: "overflows window", start: slotAt(17, 30)},
		{name: "day without windows", start: slotAt(14, 0).AddDate(0, 0, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			req.StartTime = tc.start

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideAvailability)
		})
	}
}

func TestExecuteMinNotice(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	// окно есть и на текущий день недели, но до слота меньше 24 часов
	env.availability.windows = append(env.availability.windows, &domain.AvailabilityWindow{
		ID:         2,
		ProviderID: testProviderID,
		DayOfWeek:  int(testNow.Weekday()),
		StartTime:  types.TimeString("09:00"),
		EndTime:    types.TimeString("18:00"),
	})

	req := baseRequest()
	req.StartTime = testNow.Add(2 * time.Hour)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecuteMaxAdvance(t *testing.T) {
	env := newTestEnv(activeProvider(50), nil)

	req := baseRequest()
	// вторник через 5 недель - дальше лимита в 30 дней
	req.StartTime = slotAt(14, 0).AddDate(0, 0, 28)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecuteProviderInactive(t *testing.T) {
	provider := activeProvider(50)
	provider.IsActive = false
	env := newTestEnv(provider, nil)

	_, err := env.uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrProviderInactive)
}

func TestExecuteProviderNotFound(t *testing.T) {
	env := newTestEnv(nil, directory.ErrProviderNotFound)

	_, err := env.uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecuteDirectoryDegraded(t *testing.T) {
	// каталог недоступен - ставка берется из настроек провайдера
	env := newTestEnv(nil, directory.ErrServiceDegraded)

	resp, err := env.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHourlyPrice, resp.Price)
}

func TestExecuteProviderWithoutRate(t *testing.T) {
	provider := activeProvider(50)
	provider.HourlyRate = nil
	env := newTestEnv(provider, nil)

	resp, err := env.uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHourlyPrice, resp.Price)
}

func TestExecuteValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "zero client id",
			mutate: func(req *Request) { req.ClientID = 0 },
		},
		{
			name:   "zero provider id",
			mutate: func(req *Request) { req.ProviderID = 0 },
		},
		{
			name:   "provider books own time",
			mutate: func(req *Request) { req.ClientID = req.ProviderID },
		},
		{
			name:   "empty service type",
			mutate: func(req *Request) { req.ServiceType = "" },
		},
		{
			name:   "zero start time",
			mutate: func(req *Request) { req.StartTime = time.Time{} },
		},
		{
			name:   "zero participants",
			mutate: func(req *Request) { req.Participants = 0 },
		},
		{
			name:   "too many participants",
			mutate: func(req *Request) { req.Participants = domain.MaxParticipants + 1 },
		},
		{
			name:   "duration below minimum",
			mutate: func(req *Request) { req.DurationMinutes = ptr.Ptr(5) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(activeProvider(50), nil)

			req := baseRequest()
			tc.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
