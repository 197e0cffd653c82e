package transition_booking

import (
	"time"

	transitionBooking "github.com/m04kA/EDU-SchedulingService/internal/usecase/transition_booking"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// TransitionResponse HTTP response model
type TransitionResponse struct {
	ID           int64    `json:"id"`
	ProviderID   int64    `json:"providerId"`
	ClientID     int64    `json:"clientId"`
	OldStatus    string   `json:"oldStatus"`
	Status       string   `json:"status"`
	Price        float64  `json:"price"`
	RefundAmount *float64 `json:"refundAmount,omitempty"`
	CancelledAt  *string  `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transitionBooking.Response) *TransitionResponse {
	out := &TransitionResponse{
		ID:           resp.ID,
		ProviderID:   resp.ProviderID,
		ClientID:     resp.ClientID,
		OldStatus:    resp.OldStatus,
		Status:       resp.Status,
		Price:        resp.Price,
		RefundAmount: resp.RefundAmount,
	}

	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &formatted
	}

	return out
}
