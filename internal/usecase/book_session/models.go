package book_session

import "time"

// Request модель запроса на бронирование мест в групповом событии
type Request struct {
	ClientID       int64     // ID клиента
	EventID        int64     // ID события из каталога
	StartAt        time.Time // Начало сессии события
	NumberOfPeople int       // Количество бронируемых мест
}

// Response модель ответа с созданным групповым бронированием
type Response struct {
	ID             int64     // ID бронирования
	EventID        int64     // ID события
	ClientID       int64     // ID клиента
	StartAt        time.Time // Начало сессии
	NumberOfPeople int       // Количество мест
	Status         string    // Статус бронирования
	Price          float64   // Итоговая цена (seatPrice * numberOfPeople)
	SeatsLeft      int       // Оставшаяся вместимость после бронирования
	CreatedAt      time.Time // Время создания
	UpdatedAt      time.Time // Время обновления
}
