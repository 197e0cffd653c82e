package directory

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден в каталоге
	ErrProviderNotFound = errors.New("directory client: provider not found")

	// ErrEventNotFound возвращается, когда событие не найдено в каталоге
	ErrEventNotFound = errors.New("directory client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что каталог недоступен и следует использовать базовую ставку из настроек
	ErrServiceDegraded = errors.New("directory unavailable: graceful degradation applied")
)
