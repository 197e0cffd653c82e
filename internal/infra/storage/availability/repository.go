package availability

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

var windowColumns = []string{
	"id",
	"provider_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_recurring",
	"created_at",
}

// Repository репозиторий для окон доступности провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(
			"provider_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_recurring",
		).
		Values(
			window.ProviderID,
			window.DayOfWeek,
			window.StartTime,
			window.EndTime,
			window.IsRecurring,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time

	return window, nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.AvailabilityWindow
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.ProviderID,
		&window.DayOfWeek,
		&window.StartTime,
		&window.EndTime,
		&window.IsRecurring,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %w", ErrScanRow, err)
	}

	window.CreatedAt = createdAt.Time

	return &window, nil
}

// GetByProviderID получает все окна провайдера, упорядоченные по (день недели, время начала)
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) ([]*domain.AvailabilityWindow, error) {
	return r.getList(ctx, squirrel.Eq{"provider_id": providerID}, "GetByProviderID")
}

// GetByProviderAndDay получает окна провайдера на конкретный день недели
// Используется проверкой пересечения при добавлении окна
func (r *Repository) GetByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	return r.getList(ctx, squirrel.Eq{"provider_id": providerID, "day_of_week": dayOfWeek}, "GetByProviderAndDay")
}

// Delete удаляет окно доступности (жесткое удаление)
// Окна не мутируются: изменение расписания - это удаление + создание нового окна
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func (r *Repository) getList(ctx context.Context, where squirrel.Eq, op string) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(where).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var window domain.AvailabilityWindow
		var createdAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.ProviderID,
			&window.DayOfWeek,
			&window.StartTime,
			&window.EndTime,
			&window.IsRecurring,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}

		window.CreatedAt = createdAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return windows, nil
}
