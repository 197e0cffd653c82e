package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ClientID        int64     // ID клиента (из заголовков аутентификации)
	ProviderID      int64     // ID провайдера
	ServiceType     string    // Тип услуги (свободная строка, например "math tutoring")
	StartTime       time.Time // Начало слота
	DurationMinutes *int      // Длительность; nil = defaultDurationMinutes из настроек
	Participants    int       // Количество участников (минимум 1)
	Location        *string   // Место проведения (опционально)
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     // ID созданного бронирования
	ProviderID      int64     // ID провайдера
	ClientID        int64     // ID клиента
	ServiceType     string    // Тип услуги
	StartTime       time.Time // Начало слота
	EndTime         time.Time // Конец слота
	DurationMinutes int       // Длительность в минутах
	Participants    int       // Количество участников
	Status          string    // Статус бронирования (всегда pending при создании)
	Price           float64   // Итоговая цена

	Location *string // Место проведения
	Notes    *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
