package directory

// Provider модель провайдера (преподавателя) из каталога
type Provider struct {
	ID          int64    `json:"id"`
	DisplayName string   `json:"display_name"`
	HourlyRate  *float64 `json:"hourly_rate"` // nil = ставка не задана, используется дефолт из настроек
	IsActive    bool     `json:"is_active"`
}

// Event модель группового события (вебинар, групповое занятие) из каталога
type Event struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"provider_id"`
	Title       string  `json:"title"`
	MaxCapacity int     `json:"max_capacity"`
	SeatPrice   float64 `json:"seat_price"`
	IsActive    bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
