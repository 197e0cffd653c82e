package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений
// Все вызовы fire-and-forget: ошибка уведомления логируется и никогда
// не откатывает уже записанное бронирование
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// BookingCreatedEvent payload уведомления о создании бронирования
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ProviderID int64     `json:"provider_id"`
	ClientID   int64     `json:"client_id"`
	StartTime  time.Time `json:"start_time"`
	Price      float64   `json:"price"`
}

// StatusChangedEvent payload уведомления о смене статуса
type StatusChangedEvent struct {
	BookingID  int64  `json:"booking_id"`
	ProviderID int64  `json:"provider_id"`
	ClientID   int64  `json:"client_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

// BookingCreated отправляет уведомление о созданном бронировании
func (c *Client) BookingCreated(ctx context.Context, event BookingCreatedEvent) {
	c.post(ctx, "/internal/notifications/booking-created", event)
}

// BookingStatusChanged отправляет уведомление о смене статуса бронирования
func (c *Client) BookingStatusChanged(ctx context.Context, event StatusChangedEvent) {
	c.post(ctx, "/internal/notifications/booking-status-changed", event)
}

// post выполняет POST запрос; любая ошибка только логируется
func (c *Client) post(ctx context.Context, path string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("notify: failed to marshal payload for %s: %v", path, err)
		return
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error("notify: failed to create request for %s: %v", path, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("notify: failed to deliver %s: %v", path, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("notify: %s returned unexpected status %d", path, resp.StatusCode)
		return
	}

	c.log.Info("notify: delivered %s", path)
}
