package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом провайдеров и событий (DirectoryService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DirectoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProvider получает провайдера по ID
func (c *Client) GetProvider(ctx context.Context, providerID int64) (*Provider, error) {
	url := fmt.Sprintf("%s/internal/providers/%d", c.baseURL, providerID)

	var provider Provider
	if err := c.getJSON(ctx, url, &provider, ErrProviderNotFound); err != nil {
		return nil, err
	}

	return &provider, nil
}

// GetProviderWithGracefulDegradation получает провайдера с graceful degradation
// При недоступности каталога возвращает ErrServiceDegraded, что позволяет
// сервису бронирования использовать базовую ставку из настроек провайдера
func (c *Client) GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*Provider, error) {
	provider, err := c.GetProvider(ctx, providerID)
	if err != nil {
		// Критичная бизнес-ошибка пробрасывается дальше
		if errors.Is(err, ErrProviderNotFound) {
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("DirectoryService unavailable, applying graceful degradation for provider_id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: provider_id=%d, error=%v", ErrServiceDegraded, providerID, err)
	}

	return provider, nil
}

// GetEvent получает групповое событие по ID
func (c *Client) GetEvent(ctx context.Context, eventID int64) (*Event, error) {
	url := fmt.Sprintf("%s/internal/events/%d", c.baseURL, eventID)

	var event Event
	if err := c.getJSON(ctx, url, &event, ErrEventNotFound); err != nil {
		return nil, err
	}

	return &event, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFound - ошибка, возвращаемая при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
