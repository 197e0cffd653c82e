package transition_booking

import (
	"context"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error
	CancelFrom(ctx context.Context, id int64, from domain.BookingStatus, reason string) error
}

// SettingsProvider интерфейс доступа к настройкам провайдера
type SettingsProvider interface {
	GetDomain(ctx context.Context, providerID int64) (*domain.ProviderSettings, error)
}

// PaymentsClient интерфейс клиента платежного сервиса
type PaymentsClient interface {
	RegisterRefund(ctx context.Context, bookingID int64, amount float64) error
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	BookingStatusChanged(ctx context.Context, event notify.StatusChangedEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
