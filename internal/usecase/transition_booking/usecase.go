package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/EDU-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/EDU-SchedulingService/internal/integrations/notify"
	"github.com/m04kA/EDU-SchedulingService/pkg/ptr"
)

// UseCase use case перевода бронирования в новый статус
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsProvider
	payments     PaymentsClient
	notifier     NotifyClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsProvider,
	payments PaymentsClient,
	notifier NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		payments:     payments,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет переход бронирования по машине состояний
// Чтение и условное обновление выполняются в одной транзакции: запись
// блокируется FOR UPDATE, а UPDATE дополнительно проверяет исходный статус
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionBooking: booking=%d, target=%s, user=%d, role=%s",
		req.BookingID, req.Target, req.UserID, req.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionBooking: validation failed: %v", err)
		return nil, err
	}

	target := domain.BookingStatus(req.Target)
	role := domain.ActorRole(req.Role)
	now := uc.timeProvider.Now()

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Читаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("TransitionBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("TransitionBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3. Проверяем, что пользователь сторона бронирования (или администратор)
		if role != domain.RoleAdmin && !booking.IsParty(req.UserID) {
			uc.logger.Warn("TransitionBooking: user=%d is not a party of booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// Роль должна соответствовать месту пользователя в бронировании
		if err := uc.checkRoleMatchesParty(booking, req.UserID, role); err != nil {
			return err
		}

		// 4. Проверяем переход по машине состояний
		if err := domain.ValidateTransition(booking, target, role, now); err != nil {
			uc.logger.Warn("TransitionBooking: transition %s -> %s rejected: %v", booking.Status, target, err)
			return mapTransitionError(err)
		}

		// 5. Отмена подтвержденного бронирования клиентом проверяется
		// против политики отмены; администратор политикой не ограничен
		var refund *float64
		if target == domain.StatusCancelled && booking.Status == domain.StatusConfirmed {
			settings, err := uc.settings.GetDomain(txCtx, booking.ProviderID)
			if err != nil {
				uc.logger.Error("TransitionBooking: failed to get settings for provider=%d: %v", booking.ProviderID, err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}

			if role == domain.RoleClient && !settings.CancellationPolicy.CancellationAllowed(booking.StartTime, now) {
				uc.logger.Warn("TransitionBooking: cancellation of booking id=%d is past the %dh cutoff",
					req.BookingID, settings.CancellationPolicy.AllowedUntilHours)
				return ErrCancellationCutoff
			}

			refund = ptr.Ptr(domain.RefundAmount(booking.Price, settings.CancellationPolicy.RefundPercentage))
		}

		// 6. Условное обновление: исходный статус в WHERE отсекает гонку
		if target == domain.StatusCancelled {
			reason := ""
			if req.Reason != nil {
				reason = *req.Reason
			}
			err = uc.bookingRepo.CancelFrom(txCtx, booking.ID, booking.Status, reason)
		} else {
			err = uc.bookingRepo.UpdateStatusFrom(txCtx, booking.ID, booking.Status, target)
		}
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("TransitionBooking: booking id=%d status changed concurrently", req.BookingID)
				return ErrStatusConflict
			}
			uc.logger.Error("TransitionBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		resp := &Response{
			ID:           booking.ID,
			ProviderID:   booking.ProviderID,
			ClientID:     booking.ClientID,
			OldStatus:    string(booking.Status),
			Status:       string(target),
			Price:        booking.Price,
			RefundAmount: refund,
		}
		if target == domain.StatusCancelled {
			resp.CancelledAt = ptr.Ptr(now)
		}

		result = resp
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionBooking: booking id=%d transitioned %s -> %s", result.ID, result.OldStatus, result.Status)

	// 7. Пост-транзакционные эффекты
	if result.RefundAmount != nil && *result.RefundAmount > 0 {
		if err := uc.payments.RegisterRefund(ctx, result.ID, *result.RefundAmount); err != nil {
			uc.logger.Error("TransitionBooking: failed to register refund for booking id=%d: %v", result.ID, err)
		}
	}

	uc.notifier.BookingStatusChanged(ctx, notify.StatusChangedEvent{
		BookingID:  result.ID,
		ProviderID: result.ProviderID,
		ClientID:   result.ClientID,
		OldStatus:  result.OldStatus,
		NewStatus:  result.Status,
	})

	return result, nil
}

// checkRoleMatchesParty сверяет заявленную роль с местом пользователя в бронировании
func (uc *UseCase) checkRoleMatchesParty(booking *domain.Booking, userID int64, role domain.ActorRole) error {
	switch role {
	case domain.RoleClient:
		if booking.ClientID != userID {
			uc.logger.Warn("TransitionBooking: user=%d claims client role but is not the client of booking id=%d", userID, booking.ID)
			return ErrAccessDenied
		}
	case domain.RoleProvider:
		if booking.ProviderID != userID {
			uc.logger.Warn("TransitionBooking: user=%d claims provider role but is not the provider of booking id=%d", userID, booking.ID)
			return ErrAccessDenied
		}
	}
	return nil
}

// mapTransitionError транслирует доменные ошибки машины состояний в ошибки usecase
func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return ErrInvalidTransition
	case errors.Is(err, domain.ErrTransitionNotAllowed):
		return ErrTransitionNotAllowed
	case errors.Is(err, domain.ErrTooEarlyToComplete):
		return ErrTooEarlyToComplete
	case errors.Is(err, domain.ErrTooEarlyForNoShow):
		return ErrTooEarlyForNoShow
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	role := domain.ActorRole(req.Role)
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	target := domain.BookingStatus(req.Target)
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Target)
	}
	if target == domain.StatusPending {
		return fmt.Errorf("%w: cannot transition back to pending", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
