package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является стороной бронирования
	ErrAccessDenied = errors.New("transition_booking: access denied")

	// ErrInvalidTransition возвращается, когда целевой статус недостижим из текущего
	ErrInvalidTransition = errors.New("transition_booking: invalid status transition")

	// ErrTransitionNotAllowed возвращается, когда роль не может выполнить переход
	ErrTransitionNotAllowed = errors.New("transition_booking: transition not allowed for this role")

	// ErrTooEarlyToComplete возвращается при завершении бронирования до его окончания
	ErrTooEarlyToComplete = errors.New("transition_booking: booking has not ended yet")

	// ErrTooEarlyForNoShow возвращается при отметке неявки до начала бронирования
	ErrTooEarlyForNoShow = errors.New("transition_booking: booking has not started yet")

	// ErrCancellationCutoff возвращается, когда клиент отменяет подтвержденное
	// бронирование позже разрешенного политикой срока
	ErrCancellationCutoff = errors.New("transition_booking: cancellation window has passed")

	// ErrStatusConflict возвращается при конкурентном изменении статуса
	ErrStatusConflict = errors.New("transition_booking: booking status changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
