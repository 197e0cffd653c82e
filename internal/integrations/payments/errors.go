package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrChargeRejected возвращается, когда платежный сервис отклонил операцию
	ErrChargeRejected = errors.New("payments client: operation rejected")
)
