package payments

import (
	"bytes"
	"context"
	"encoding/json"
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

// Client клиент платежного сервиса
// Регистрирует обязательства по оплате и возвраты; само списание средств
// выполняется платежным сервисом асинхронно
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type chargeRequest struct {
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

type refundRequest struct {
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

// RegisterCharge регистрирует обязательство по оплате бронирования
func (c *Client) RegisterCharge(ctx context.Context, bookingID int64, amount float64) error {
	req := chargeRequest{BookingID: bookingID, Amount: amount}
	if err := c.postJSON(ctx, "/internal/payments/charges", req); err != nil {
		return err
	}

	c.log.Info("payments: charge registered for booking_id=%d, amount=%.2f", bookingID, amount)
	return nil
}

// RegisterRefund регистрирует возврат по отмененному бронированию
func (c *Client) RegisterRefund(ctx context.Context, bookingID int64, amount float64) error {
	req := refundRequest{BookingID: bookingID, Amount: amount}
	if err := c.postJSON(ctx, "/internal/payments/refunds", req); err != nil {
		return err
	}

	c.log.Info("payments: refund registered for booking_id=%d, amount=%.2f", bookingID, amount)
	return nil
}

// postJSON выполняет POST запрос с JSON телом
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrChargeRejected, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
