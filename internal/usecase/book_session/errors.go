package book_session

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено в каталоге
	ErrEventNotFound = errors.New("book_session: event not found")

	// ErrEventInactive возвращается, когда событие деактивировано
	ErrEventInactive = errors.New("book_session: event is inactive")

	// ErrCapacityExceeded возвращается, когда запрошенные места не помещаются
	// в оставшуюся вместимость события
	ErrCapacityExceeded = errors.New("book_session: event capacity exceeded")

	// ErrSessionInPast возвращается при попытке забронировать прошедшую сессию
	ErrSessionInPast = errors.New("book_session: session start is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
