package transition_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/api/middleware"
	transitionBooking "github.com/m04kA/EDU-SchedulingService/internal/usecase/transition_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgBookingNotFound      = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgInvalidTransition    = "недопустимый переход статуса"
	msgTransitionNotAllowed = "переход недоступен для вашей роли"
	msgTooEarlyToComplete   = "бронирование еще не завершилось"
	msgTooEarlyForNoShow    = "бронирование еще не началось"
	msgCancellationCutoff   = "срок отмены бронирования истек"
	msgStatusConflict       = "статус бронирования изменен параллельным запросом"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Role:      string(role),
		Target:    req.Status,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, transitionBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, transitionBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%d, target=%s",
				bookingID, req.Status)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, transitionBooking.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /bookings/{id}/status - Transition not allowed: booking_id=%d, user_id=%d, target=%s",
				bookingID, userID, req.Status)
			handlers.RespondForbidden(w, msgTransitionNotAllowed)

		case errors.Is(err, transitionBooking.ErrTooEarlyToComplete):
			h.logger.Warn("PATCH /bookings/{id}/status - Too early to complete: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgTooEarlyToComplete)

		case errors.Is(err, transitionBooking.ErrTooEarlyForNoShow):
			h.logger.Warn("PATCH /bookings/{id}/status - Too early for no-show: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgTooEarlyForNoShow)

		case errors.Is(err, transitionBooking.ErrCancellationCutoff):
			h.logger.Warn("PATCH /bookings/{id}/status - Cancellation cutoff passed: booking_id=%d", bookingID)
			handlers.RespondUnprocessable(w, msgCancellationCutoff)

		case errors.Is(err, transitionBooking.ErrStatusConflict):
			h.logger.Warn("PATCH /bookings/{id}/status - Concurrent status change: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgStatusConflict)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to transition: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Transitioned successfully: booking_id=%d, %s -> %s",
		bookingID, result.OldStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
