package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	settingsRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/EDU-SchedulingService/internal/service/settings/models"
)

// Service сервис настроек бронирования провайдера
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки провайдера
// При первом обращении лениво создает запись с дефолтными значениями
// Публичный метод - настройки видны любому пользователю
func (s *Service) Get(ctx context.Context, providerID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for provider=%d", providerID)

	settings, err := s.getOrCreate(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки провайдера
// Доступно только самому провайдеру и администратору
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, providerID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for provider=%d by user=%d", providerID, req.UserID)

	// 1. Проверяем права доступа
	role := domain.ActorRole(req.Role)
	if role != domain.RoleAdmin && req.UserID != providerID {
		s.logger.Warn("Update: user=%d is not allowed to change settings of provider=%d", req.UserID, providerID)
		return nil, ErrAccessDenied
	}

	// 2. Получаем текущие настройки (лениво создав дефолтные при необходимости)
	settings, err := s.getOrCreate(ctx, providerID)
	if err != nil {
		return nil, err
	}

	// 3. Применяем обновления и валидируем результат целиком
	req.ApplyToSettings(settings)

	if err := s.validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed for provider=%d: %v", providerID, err)
		return nil, err
	}

	// 4. Сохраняем полную запись
	updated, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for provider=%d", providerID)
	return models.FromDomainSettings(updated), nil
}

// GetDomain получает доменную модель настроек с ленивым созданием дефолтов
// Используется другими слоями (usecase бронирования) внутри транзакций
func (s *Service) GetDomain(ctx context.Context, providerID int64) (*domain.ProviderSettings, error) {
	return s.getOrCreate(ctx, providerID)
}

// getOrCreate читает настройки, при отсутствии создает дефолтные и перечитывает
func (s *Service) getOrCreate(ctx context.Context, providerID int64) (*domain.ProviderSettings, error) {
	settings, err := s.settingsRepo.GetByProviderID(ctx, providerID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("getOrCreate: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: getOrCreate - repository error: %w", ErrInternal, err)
	}

	// ON CONFLICT DO NOTHING: параллельное ленивое создание безопасно
	if err := s.settingsRepo.CreateDefaults(ctx, providerID); err != nil {
		s.logger.Error("getOrCreate: failed to create default settings for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: getOrCreate - failed to create defaults: %w", ErrInternal, err)
	}

	settings, err = s.settingsRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		s.logger.Error("getOrCreate: failed to re-read settings for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: getOrCreate - failed to re-read settings: %w", ErrInternal, err)
	}

	s.logger.Info("getOrCreate: created default settings for provider=%d", providerID)
	return settings, nil
}

// validateSettings валидирует полную запись настроек
func (s *Service) validateSettings(settings *domain.ProviderSettings) error {
	if settings.MinNoticeHours < domain.MinNoticeHours {
		return fmt.Errorf("%w: minNoticeHours must be >= %d", ErrInvalidInput, domain.MinNoticeHours)
	}

	if settings.MaxAdvanceDays < domain.MinAdvanceDays || settings.MaxAdvanceDays > domain.MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: maxAdvanceDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceDays, domain.MaxAdvanceDaysLimit)
	}

	if settings.CancellationPolicy.AllowedUntilHours < domain.MinCancelAllowedHours {
		return fmt.Errorf("%w: cancelAllowedUntilHours must be >= %d", ErrInvalidInput, domain.MinCancelAllowedHours)
	}

	if settings.CancellationPolicy.RefundPercentage < domain.MinRefundPercentage ||
		settings.CancellationPolicy.RefundPercentage > domain.MaxRefundPercentage {
		return fmt.Errorf("%w: refundPercentage must be between %d and %d",
			ErrInvalidInput, domain.MinRefundPercentage, domain.MaxRefundPercentage)
	}

	if settings.BufferTimeMinutes < domain.MinBufferTimeMinutes {
		return fmt.Errorf("%w: bufferTimeMinutes must be >= %d", ErrInvalidInput, domain.MinBufferTimeMinutes)
	}

	if settings.DefaultDurationMinutes < domain.MinDurationMinutes || settings.DefaultDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: defaultDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if settings.DefaultHourlyPrice < domain.MinHourlyPrice {
		return fmt.Errorf("%w: defaultHourlyPrice must be >= %.2f", ErrInvalidInput, domain.MinHourlyPrice)
	}

	return nil
}
