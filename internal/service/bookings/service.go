package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/EDU-SchedulingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Создание и смена статуса живут в usecase слое, здесь только read-модель
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно сторонам бронирования (клиент, провайдер) и администратору
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d by user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if domain.ActorRole(role) != domain.RoleAdmin && !booking.IsParty(userID) {
		s.logger.Warn("GetByID: user=%d is not a party of booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetProviderBookings возвращает бронирования провайдера
// Доступно самому провайдеру и администратору
func (s *Service) GetProviderBookings(ctx context.Context, providerID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProviderBookings: fetching bookings for provider=%d by user=%d", providerID, req.UserID)

	if domain.ActorRole(req.Role) != domain.RoleAdmin && req.UserID != providerID {
		s.logger.Warn("GetProviderBookings: user=%d is not allowed to list bookings of provider=%d", req.UserID, providerID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{
		ProviderID:   &providerID,
		UpcomingOnly: req.UpcomingOnly,
	}
	if err := applyStatusFilter(&filter, req.Status); err != nil {
		s.logger.Warn("GetProviderBookings: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderBookings: successfully fetched %d bookings for provider=%d", len(bookings), providerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetClientBookings возвращает бронирования клиента
// Доступно самому клиенту и администратору
func (s *Service) GetClientBookings(ctx context.Context, clientID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d by user=%d", clientID, req.UserID)

	if domain.ActorRole(req.Role) != domain.RoleAdmin && req.UserID != clientID {
		s.logger.Warn("GetClientBookings: user=%d is not allowed to list bookings of client=%d", req.UserID, clientID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{
		ClientID:     &clientID,
		UpcomingOnly: req.UpcomingOnly,
	}
	if err := applyStatusFilter(&filter, req.Status); err != nil {
		s.logger.Warn("GetClientBookings: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), clientID)
	return models.FromDomainBookingList(bookings), nil
}

// applyStatusFilter валидирует и применяет фильтр по статусу
func applyStatusFilter(filter *domain.BookingsFilter, status *string) error {
	if status == nil {
		return nil
	}

	bookingStatus := domain.BookingStatus(*status)
	if !bookingStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}

	filter.Status = &bookingStatus
	return nil
}
