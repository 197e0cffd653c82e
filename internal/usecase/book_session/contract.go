package book_session

import (
	"context"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
)

// SessionRepository интерфейс репозитория групповых бронирований
type SessionRepository interface {
	Create(ctx context.Context, booking *domain.SessionBooking) (*domain.SessionBooking, error)
	SumActivePeople(ctx context.Context, eventID int64, startAt time.Time) (int, error)
}

// DirectoryClient интерфейс клиента каталога провайдеров и событий
type DirectoryClient interface {
	GetEvent(ctx context.Context, eventID int64) (*directory.Event, error)
}

// PaymentsClient интерфейс клиента платежного сервиса
type PaymentsClient interface {
	RegisterCharge(ctx context.Context, bookingID int64, amount float64) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	BookingCreated(ctx context.Context, event notify.BookingCreatedEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
