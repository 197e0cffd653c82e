package settings

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек провайдера
type SettingsRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderSettings, error)
	CreateDefaults(ctx context.Context, providerID int64) error
	Upsert(ctx context.Context, s *domain.ProviderSettings) (*domain.ProviderSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
