package transition_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
	"github.com/m04kA/EDU-SchedulingService/pkg/ptr"
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

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatusFrom(_ context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	return nil
}

func (r *fakeBookingRepo) CancelFrom(_ context.Context, id int64, from domain.BookingStatus, reason string) error {
	b, ok := r.bookings[id]
	if !ok || b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = domain.StatusCancelled
	if reason != "" {
		b.CancellationReason = ptr.Ptr(reason)
	}
	return nil
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

type fakePaymentsClient struct {
	refunds []float64
}

func (c *fakePaymentsClient) RegisterRefund(_ context.Context, _ int64, amount float64) error {
	c.refunds = append(c.refunds, amount)
	return nil
}

type fakeNotifyClient struct {
	events []notify.StatusChangedEvent
}

func (c *fakeNotifyClient) BookingStatusChanged(_ context.Context, event notify.StatusChangedEvent) {
	c.events = append(c.events, event)
}

var (
	transitionNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	providerID    = int64(10)
	clientID      = int64(20)
)

func booking(id int64, status domain.BookingStatus, start time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		ProviderID: providerID,
		ClientID:   clientID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Status:     status,
		Price:      160,
	}
}

type testEnv struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	payments *fakePaymentsClient
	notifier *fakeNotifyClient
}

func newTestEnv(settings *domain.ProviderSettings, bookings ...*domain.Booking) *testEnv {
	repo := newFakeBookingRepo(bookings...)
	payments := &fakePaymentsClient{}
	notifier := &fakeNotifyClient{}

	uc := NewUseCase(repo, &fakeSettingsProvider{settings: settings}, payments, notifier, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: transitionNow}

	return &testEnv{uc: uc, repo: repo, payments: payments, notifier: notifier}
}

func TestExecuteProviderConfirms(t *testing.T) {
	env := newTestEnv(nil, booking(1, domain.StatusPending, transitionNow.Add(72*time.Hour)))

	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    providerID,
		Role:      string(domain.RoleProvider),
		Target:    string(domain.StatusConfirmed),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.OldStatus)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.RefundAmount)
	assert.Nil(t, resp.CancelledAt)

	stored, err := env.repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, string(domain.StatusConfirmed), env.notifier.events[0].NewStatus)
	assert.Empty(t, env.payments.refunds)
}

func TestExecuteClientCancelsConfirmedWithRefund(t *testing.T) {
	env := newTestEnv(nil, booking(1, domain.StatusConfirmed, transitionNow.Add(72*time.Hour)))

	reason := "schedule conflict"
	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    clientID,
		Role:      string(domain.RoleClient),
		Target:    string(domain.StatusCancelled),
		Reason:    &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.RefundAmount)
	// дефолтная политика возвращает 100%
	assert.Equal(t, 160.0, *resp.RefundAmount)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, transitionNow, *resp.CancelledAt)

	stored, err := env.repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancellationReason)
	assert.Equal(t, reason, *stored.CancellationReason)

	require.Len(t, env.payments.refunds, 1)
	assert.Equal(t, 160.0, env.payments.refunds[0])
}

func TestExecutePartialRefund(t *testing.T) {
	settings := domain.DefaultSettings(providerID)
	settings.CancellationPolicy.RefundPercentage = 50
	env := newTestEnv(settings, booking(1, domain.StatusConfirmed, transitionNow.Add(72*time.Hour)))

	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    clientID,
		Role:      string(domain.RoleClient),
		Target:    string(domain.StatusCancelled),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.RefundAmount)
	assert.Equal(t, 80.0, *resp.RefundAmount)
}

func TestExecuteCancellationCutoff(t *testing.T) {
	// до начала меньше 24 часов - отмена клиентом отклоняется
	env := newTestEnv(nil, booking(1, domain.StatusConfirmed, transitionNow.Add(2*time.Hour)))

	_, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    clientID,
		Role:      string(domain.RoleClient),
		Target:    string(domain.StatusCancelled),
	})
	assert.ErrorIs(t, err, ErrCancellationCutoff)

	stored, getErr := env.repo.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestExecuteAdminCancelsPastCutoff(t *testing.T) {
	// администратор политикой отмены не ограничен
	env := newTestEnv(nil, booking(1, domain.StatusConfirmed, transitionNow.Add(2*time.Hour)))

	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    777,
		Role:      string(domain.RoleAdmin),
		Target:    string(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecuteCancelPendingWithoutRefund(t *testing.T) {
	// отмена неподтвержденного бронирования не порождает возврат
	env := newTestEnv(nil, booking(1, domain.StatusPending, transitionNow.Add(2*time.Hour)))

	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    clientID,
		Role:      string(domain.RoleClient),
		Target:    string(domain.StatusCancelled),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.RefundAmount)
	assert.Empty(t, env.payments.refunds)
}

func TestExecuteRoleGating(t *testing.T) {
	cases := []struct {
		name    string
		status  domain.BookingStatus
		start   time.Time
		userID  int64
		role    string
		target  string
		wantErr error
	}{
		{
			name:   "client cannot confirm",
			status: domain.StatusPending, start: transitionNow.Add(72 * time.Hour),
			userID: clientID, role: string(domain.RoleClient), target: string(domain.StatusConfirmed),
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "provider cannot cancel confirmed",
			status: domain.StatusConfirmed, start: transitionNow.Add(72 * time.Hour),
			userID: providerID, role: string(domain.RoleProvider), target: string(domain.StatusCancelled),
			wantErr: ErrTransitionNotAllowed,
		},
		{
			name:   "stranger is not a party",
			status: domain.StatusPending, start: transitionNow.Add(72 * time.Hour),
			userID: 777, role: string(domain.RoleClient), target: string(domain.StatusCancelled),
			wantErr: ErrAccessDenied,
		},
		{
			name:   "client claiming provider role is rejected",
			status: domain.StatusPending, start: transitionNow.Add(72 * time.Hour),
			userID: clientID, role: string(domain.RoleProvider), target: string(domain.StatusConfirmed),
			wantErr: ErrAccessDenied,
		},
		{
			name:   "terminal status rejects transitions",
			status: domain.StatusCancelled, start: transitionNow.Add(72 * time.Hour),
			userID: providerID, role: string(domain.RoleProvider), target: string(domain.StatusConfirmed),
			wantErr: ErrInvalidTransition,
		},
		{
			name:   "cannot complete before end",
			status: domain.StatusConfirmed, start: transitionNow.Add(72 * time.Hour),
			userID: providerID, role: string(domain.RoleProvider), target: string(domain.StatusCompleted),
			wantErr: ErrTooEarlyToComplete,
		},
		{
			name:   "cannot mark no-show before start",
			status: domain.StatusConfirmed, start: transitionNow.Add(72 * time.Hour),
			userID: providerID, role: string(domain.RoleProvider), target: string(domain.StatusNoShow),
			wantErr: ErrTooEarlyForNoShow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(nil, booking(1, tc.status, tc.start))

			_, err := env.uc.Execute(context.Background(), &Request{
				BookingID: 1,
				UserID:    tc.userID,
				Role:      tc.role,
				Target:    tc.target,
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExecuteCompleteAfterEnd(t *testing.T) {
	env := newTestEnv(nil, booking(1, domain.StatusConfirmed, transitionNow.Add(-48*time.Hour)))

	resp, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		UserID:    providerID,
		Role:      string(domain.RoleProvider),
		Target:    string(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
}

func TestExecuteBookingNotFound(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.uc.Execute(context.Background(), &Request{
		BookingID: 404,
		UserID:    clientID,
		Role:      string(domain.RoleClient),
		Target:    string(domain.StatusCancelled),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteValidation(t *testing.T) {
	cases := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero booking id",
			req:  &Request{UserID: clientID, Role: string(domain.RoleClient), Target: string(domain.StatusCancelled)},
		},
		{
			name: "zero user id",
			req:  &Request{BookingID: 1, Role: string(domain.RoleClient), Target: string(domain.StatusCancelled)},
		},
		{
			name: "unknown role",
			req:  &Request{BookingID: 1, UserID: clientID, Role: "superuser", Target: string(domain.StatusCancelled)},
		},
		{
			name: "unknown status",
			req:  &Request{BookingID: 1, UserID: clientID, Role: string(domain.RoleClient), Target: "archived"},
		},
		{
			name: "transition back to pending",
			req:  &Request{BookingID: 1, UserID: clientID, Role: string(domain.RoleClient), Target: string(domain.StatusPending)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(nil, booking(1, domain.StatusPending, transitionNow.Add(72*time.Hour)))

			_, err := env.uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
