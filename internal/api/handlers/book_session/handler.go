package book_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
	"github.com/m04kA/EDU-SchedulingService/internal/api/middleware"
	bookSession "github.com/m04kA/EDU-SchedulingService/internal/usecase/book_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidStartAt     = "некорректный формат времени сессии, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgEventNotFound      = "событие не найдено"
	msgEventInactive      = "событие не принимает бронирования"
	msgCapacityExceeded   = "недостаточно свободных мест"
	msgSessionInPast      = "сессия уже началась"
)

type Handler struct {
	useCase BookSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /events/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req BookSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID, eventID)
	if err != nil {
		h.logger.Warn("POST /events/{id}/bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSession.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/bookings - Invalid input: client_id=%d, event_id=%d, error=%v",
				clientID, eventID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookSession.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/bookings - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, bookSession.ErrEventInactive):
			h.logger.Warn("POST /events/{id}/bookings - Event inactive: event_id=%d", eventID)
			handlers.RespondUnprocessable(w, msgEventInactive)

		case errors.Is(err, bookSession.ErrCapacityExceeded):
			h.logger.Warn("POST /events/{id}/bookings - Capacity exceeded: client_id=%d, event_id=%d",
				clientID, eventID)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, bookSession.ErrSessionInPast):
			h.logger.Warn("POST /events/{id}/bookings - Session in past: event_id=%d", eventID)
			handlers.RespondUnprocessable(w, msgSessionInPast)

		default:
			h.logger.Error("POST /events/{id}/bookings - Failed to book session: client_id=%d, event_id=%d, error=%v",
				clientID, eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/bookings - Session booked successfully: booking_id=%d, client_id=%d, event_id=%d",
		result.ID, clientID, eventID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
