package sessionbooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/EDU-SchedulingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для записей на групповые сессии (capacity-модель)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей на сессии
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на сессию
// Вызывается только внутри сериализуемой транзакции вместе с SumActivePeople -
// пара "прочитать сумму, записать строку" без изоляции небезопасна
func (r *Repository) Create(ctx context.Context, booking *domain.SessionBooking) (*domain.SessionBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("session_bookings").
		Columns(
			"event_id",
			"client_id",
			"start_at",
			"number_of_people",
			"status",
			"price",
		).
		Values(
			booking.EventID,
			booking.ClientID,
			booking.StartAt,
			booking.NumberOfPeople,
			booking.Status,
			booking.Price,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// SumActivePeople возвращает суммарное число участников активных записей
// на слот (event_id, start_at)
//
// Агрегат нельзя заблокировать через FOR UPDATE, поэтому корректность
// подсчёта при конкурентных записях обеспечивает SERIALIZABLE-транзакция:
// конфликтующая пара "сумма + вставка" завершится ошибкой 40001 и будет
// повторена менеджером транзакций
func (r *Repository) SumActivePeople(ctx context.Context, eventID int64, startAt time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COALESCE(SUM(number_of_people), 0)").
		From("session_bookings").
		Where(squirrel.Eq{
			"event_id": eventID,
			"start_at": startAt,
			"status":   activeStatusStrings,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumActivePeople - build select query: %v", ErrBuildQuery, err)
	}

	var sum int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumActivePeople - scan sum: %w", ErrScanRow, err)
	}

	return sum, nil
}
