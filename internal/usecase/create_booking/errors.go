package create_booking

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден в каталоге
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrProviderInactive возвращается, когда провайдер деактивирован
	ErrProviderInactive = errors.New("create_booking: provider is inactive")

	// ErrOutsideAvailability возвращается, когда слот не попадает целиком
	// ни в одно окно недельного расписания провайдера
	ErrOutsideAvailability = errors.New("create_booking: requested time is outside provider availability")

	// ErrSlotConflict возвращается, когда слот (с учетом буфера) пересекается
	// с активным бронированием провайдера
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrTooLateToBook возвращается при нарушении minNoticeHours
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrDateTooFarInFuture возвращается при нарушении maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
