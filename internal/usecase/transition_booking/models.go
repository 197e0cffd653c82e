package transition_booking

import "time"

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64   // ID бронирования
	UserID    int64   // ID действующего пользователя
	Role      string  // Роль действующего пользователя (client, provider, admin)
	Target    string  // Целевой статус
	Reason    *string // Причина отмены (только для cancelled)
}

// Response модель ответа со сведениями о выполненном переходе
type Response struct {
	ID           int64      // ID бронирования
	ProviderID   int64      // ID провайдера
	ClientID     int64      // ID клиента
	OldStatus    string     // Статус до перехода
	Status       string     // Статус после перехода
	Price        float64    // Цена бронирования
	RefundAmount *float64   // Сумма возврата (только для отмены подтвержденного)
	CancelledAt  *time.Time // Время отмены (только для cancelled)
}
