package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/directory"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SettingsProvider интерфейс доступа к настройкам провайдера
// Лениво создает дефолтные настройки при первом обращении
type SettingsProvider interface {
	GetDomain(ctx context.Context, providerID int64) (*domain.ProviderSettings, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	GetByProviderAndDay(ctx context.Context, providerID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// DirectoryClient интерфейс клиента каталога провайдеров
type DirectoryClient interface {
	GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*directory.Provider, error)
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
