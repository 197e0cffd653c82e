package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	settingsRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/EDU-SchedulingService/internal/service/settings/models"
	"github.com/m04kA/EDU-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSettingsRepo struct {
	records map[int64]*domain.ProviderSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{records: make(map[int64]*domain.ProviderSettings)}
}

func (r *fakeSettingsRepo) GetByProviderID(_ context.Context, providerID int64) (*domain.ProviderSettings, error) {
	s, ok := r.records[providerID]
	if !ok {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSettingsRepo) CreateDefaults(_ context.Context, providerID int64) error {
	// ON CONFLICT DO NOTHING
	if _, ok := r.records[providerID]; !ok {
		r.records[providerID] = domain.DefaultSettings(providerID)
	}
	return nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *domain.ProviderSettings) (*domain.ProviderSettings, error) {
	copied := *s
	r.records[s.ProviderID] = &copied
	return s, nil
}

func TestGetCreatesDefaultsLazily(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ProviderID)
	assert.Equal(t, domain.DefaultMinNoticeHours, resp.MinNoticeHours)
	assert.Equal(t, domain.DefaultMaxAdvanceDays, resp.MaxAdvanceDays)
	assert.Equal(t, domain.DefaultCancelAllowedUntilHours, resp.CancelAllowedUntilHours)
	assert.Equal(t, domain.DefaultRefundPercentage, resp.RefundPercentage)
	assert.Equal(t, domain.DefaultBufferTimeMinutes, resp.BufferTimeMinutes)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DefaultDurationMinutes)
	assert.Equal(t, domain.DefaultHourlyPrice, resp.DefaultHourlyPrice)

	// повторный вызов читает ту же запись
	again, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, resp, again)
}

func TestUpdateAccessDenied(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateSettingsRequest{
		UserID:         99,
		Role:           string(domain.RoleProvider),
		MinNoticeHours: ptr.Ptr(48),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateByOwnerAppliesPartialFields(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 42, &models.UpdateSettingsRequest{
		UserID:            42,
		Role:              string(domain.RoleProvider),
		MinNoticeHours:    ptr.Ptr(48),
		BufferTimeMinutes: ptr.Ptr(30),
	})
	require.NoError(t, err)

	assert.Equal(t, 48, resp.MinNoticeHours)
	assert.Equal(t, 30, resp.BufferTimeMinutes)
	// незатронутые поля остаются дефолтными
	assert.Equal(t, domain.DefaultMaxAdvanceDays, resp.MaxAdvanceDays)
	assert.Equal(t, domain.DefaultHourlyPrice, resp.DefaultHourlyPrice)
}

func TestUpdateByAdmin(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 42, &models.UpdateSettingsRequest{
		UserID:           1,
		Role:             string(domain.RoleAdmin),
		RefundPercentage: ptr.Ptr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.RefundPercentage)
}

func TestUpdateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{
			name: "negative min notice",
			req:  &models.UpdateSettingsRequest{MinNoticeHours: ptr.Ptr(-1)},
		},
		{
			name: "max advance above limit",
			req:  &models.UpdateSettingsRequest{MaxAdvanceDays: ptr.Ptr(500)},
		},
		{
			name: "refund percentage above 100",
			req:  &models.UpdateSettingsRequest{RefundPercentage: ptr.Ptr(150)},
		},
		{
			name: "refund percentage negative",
			req:  &models.UpdateSettingsRequest{RefundPercentage: ptr.Ptr(-10)},
		},
		{
			name: "negative buffer",
			req:  &models.UpdateSettingsRequest{BufferTimeMinutes: ptr.Ptr(-5)},
		},
		{
			name: "zero duration",
			req:  &models.UpdateSettingsRequest{DefaultDurationMinutes: ptr.Ptr(0)},
		},
		{
			name: "negative hourly price",
			req:  &models.UpdateSettingsRequest{DefaultHourlyPrice: ptr.Ptr(-1.0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeSettingsRepo()
			svc := NewService(repo, nopLogger{})

			tc.req.UserID = 42
			tc.req.Role = string(domain.RoleProvider)

			_, err := svc.Update(context.Background(), 42, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateValidationDoesNotPersist(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateSettingsRequest{
		UserID:           42,
		Role:             string(domain.RoleProvider),
		RefundPercentage: ptr.Ptr(150),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRefundPercentage, resp.RefundPercentage)
}
