package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/EDU-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/EDU-SchedulingService/pkg/types"
)

// Service сервис для работы с недельным расписанием провайдера
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// AddWindow добавляет окно доступности в недельное расписание провайдера
// Доступно только самому провайдеру и администратору
// Окно не должно пересекаться с существующими окнами того же дня
func (s *Service) AddWindow(ctx context.Context, providerID int64, req *models.AddWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("AddWindow: adding window for provider=%d, day=%d, %s-%s by user=%d",
		providerID, req.DayOfWeek, req.StartTime, req.EndTime, req.UserID)

	// 1. Проверяем права доступа
	role := domain.ActorRole(req.Role)
	if role != domain.RoleAdmin && req.UserID != providerID {
		s.logger.Warn("AddWindow: user=%d is not allowed to change schedule of provider=%d", req.UserID, providerID)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем входные данные
	if err := s.validateWindow(req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("AddWindow: validation failed: %v", err)
		return nil, err
	}

	window := req.ToDomainWindow(providerID)

	// 3. Проверяем пересечение с существующими окнами того же дня
	existing, err := s.availabilityRepo.GetByProviderAndDay(ctx, providerID, req.DayOfWeek)
	if err != nil {
		s.logger.Error("AddWindow: failed to fetch existing windows for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: AddWindow - repository error: %v", ErrInternal, err)
	}

	for _, w := range existing {
		if window.Overlaps(w) {
			s.logger.Warn("AddWindow: window %s-%s overlaps existing window id=%d (%s-%s)",
				req.StartTime, req.EndTime, w.ID, w.StartTime, w.EndTime)
			return nil, fmt.Errorf("%w: overlaps window id=%d", ErrWindowOverlap, w.ID)
		}
	}

	// 4. Создаем окно
	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("AddWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddWindow: successfully created window id=%d for provider=%d", created.ID, providerID)
	return models.FromDomainWindow(created), nil
}

// ListWindows возвращает недельное расписание провайдера
// Публичный метод - расписание видно любому пользователю
func (s *Service) ListWindows(ctx context.Context, providerID int64) (*models.WindowListResponse, error) {
	s.logger.Info("ListWindows: fetching windows for provider=%d", providerID)

	windows, err := s.availabilityRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		s.logger.Error("ListWindows: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListWindows - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListWindows: successfully fetched %d windows for provider=%d", len(windows), providerID)
	return models.FromDomainWindowList(windows), nil
}

// RemoveWindow удаляет окно доступности
// Доступно только владельцу окна и администратору
// Уже созданные бронирования удаление окна не затрагивает
func (s *Service) RemoveWindow(ctx context.Context, providerID int64, req *models.RemoveWindowRequest) error {
	s.logger.Info("RemoveWindow: removing window id=%d of provider=%d by user=%d", req.WindowID, providerID, req.UserID)

	// 1. Проверяем права доступа
	role := domain.ActorRole(req.Role)
	if role != domain.RoleAdmin && req.UserID != providerID {
		s.logger.Warn("RemoveWindow: user=%d is not allowed to change schedule of provider=%d", req.UserID, providerID)
		return ErrAccessDenied
	}

	// 2. Проверяем, что окно существует и принадлежит провайдеру
	window, err := s.availabilityRepo.GetByID(ctx, req.WindowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("RemoveWindow: window id=%d not found", req.WindowID)
			return ErrWindowNotFound
		}
		s.logger.Error("RemoveWindow: repository error for window id=%d: %v", req.WindowID, err)
		return fmt.Errorf("%w: RemoveWindow - repository error: %v", ErrInternal, err)
	}

	if window.ProviderID != providerID {
		s.logger.Warn("RemoveWindow: window id=%d belongs to provider=%d, not provider=%d",
			req.WindowID, window.ProviderID, providerID)
		return ErrWindowNotFound
	}

	// 3. Удаляем окно
	if err := s.availabilityRepo.Delete(ctx, req.WindowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("RemoveWindow: repository error for window id=%d: %v", req.WindowID, err)
		return fmt.Errorf("%w: RemoveWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveWindow: successfully removed window id=%d", req.WindowID)
	return nil
}

// WindowsForProvider возвращает доменные окна провайдера
// Используется usecase бронирования для проверки попадания в расписание
func (s *Service) WindowsForProvider(ctx context.Context, providerID int64) ([]*domain.AvailabilityWindow, error) {
	windows, err := s.availabilityRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: WindowsForProvider - repository error: %v", ErrInternal, err)
	}
	return windows, nil
}

// validateWindow валидирует параметры окна доступности
func (s *Service) validateWindow(dayOfWeek int, startTime, endTime string) error {
	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}
