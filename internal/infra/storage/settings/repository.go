package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var settingsColumns = []string{
	"provider_id",
	"min_notice_hours",
	"max_advance_days",
	"cancel_allowed_until_hours",
	"refund_percentage",
	"buffer_time_minutes",
	"default_duration_minutes",
	"default_hourly_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек бронирования провайдера
// Одна запись на провайдера, ключ - provider_id
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает настройки провайдера
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("provider_settings").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ProviderSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ProviderID,
		&s.MinNoticeHours,
		&s.MaxAdvanceDays,
		&s.CancellationPolicy.AllowedUntilHours,
		&s.CancellationPolicy.RefundPercentage,
		&s.BufferTimeMinutes,
		&s.DefaultDurationMinutes,
		&s.DefaultHourlyPrice,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan settings: %w", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// CreateDefaults идемпотентно создает запись настроек с дефолтными значениями
// ON CONFLICT DO NOTHING: конкурентное ленивое создание не породит двух записей
// и не вернет ошибку проигравшему
func (r *Repository) CreateDefaults(ctx context.Context, providerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	defaults := domain.DefaultSettings(providerID)

	query, args, err := psqlbuilder.Insert("provider_settings").
		Columns(
			"provider_id",
			"min_notice_hours",
			"max_advance_days",
			"cancel_allowed_until_hours",
			"refund_percentage",
			"buffer_time_minutes",
			"default_duration_minutes",
			"default_hourly_price",
		).
		Values(
			defaults.ProviderID,
			defaults.MinNoticeHours,
			defaults.MaxAdvanceDays,
			defaults.CancellationPolicy.AllowedUntilHours,
			defaults.CancellationPolicy.RefundPercentage,
			defaults.BufferTimeMinutes,
			defaults.DefaultDurationMinutes,
			defaults.DefaultHourlyPrice,
		).
		Suffix("ON CONFLICT (provider_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateDefaults - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Upsert создает или обновляет настройки провайдера целиком
// Частичное слияние полей выполняет сервисный слой; сюда приходит полная запись
func (r *Repository) Upsert(ctx context.Context, s *domain.ProviderSettings) (*domain.ProviderSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_settings").
		Columns(
			"provider_id",
			"min_notice_hours",
			"max_advance_days",
			"cancel_allowed_until_hours",
			"refund_percentage",
			"buffer_time_minutes",
			"default_duration_minutes",
			"default_hourly_price",
		).
		Values(
			s.ProviderID,
			s.MinNoticeHours,
			s.MaxAdvanceDays,
			s.CancellationPolicy.AllowedUntilHours,
			s.CancellationPolicy.RefundPercentage,
			s.BufferTimeMinutes,
			s.DefaultDurationMinutes,
			s.DefaultHourlyPrice,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			min_notice_hours = EXCLUDED.min_notice_hours,
			max_advance_days = EXCLUDED.max_advance_days,
			cancel_allowed_until_hours = EXCLUDED.cancel_allowed_until_hours,
			refund_percentage = EXCLUDED.refund_percentage,
			buffer_time_minutes = EXCLUDED.buffer_time_minutes,
			default_duration_minutes = EXCLUDED.default_duration_minutes,
			default_hourly_price = EXCLUDED.default_hourly_price,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
