package book_session

import (
	"time"

	bookSession "github.com/m04kA/EDU-SchedulingService/internal/usecase/book_session"
)

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	StartAt        string `json:"startAt"` // RFC3339
	NumberOfPeople int    `json:"numberOfPeople"`
}

// SessionBookingResponse HTTP response model
type SessionBookingResponse struct {
	ID             int64   `json:"id"`
	EventID        int64   `json:"eventId"`
	ClientID       int64   `json:"clientId"`
	StartAt        string  `json:"startAt"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Status         string  `json:"status"`
	Price          float64 `json:"price"`
	SeatsLeft      int     `json:"seatsLeft"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSessionRequest) ToUseCaseRequest(clientID, eventID int64) (*bookSession.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	people := r.NumberOfPeople
	if people == 0 {
		people = 1
	}

	return &bookSession.Request{
		ClientID:       clientID,
		EventID:        eventID,
		StartAt:        startAt,
		NumberOfPeople: people,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionBookingResponse {
	return &SessionBookingResponse{
		ID:             resp.ID,
		EventID:        resp.EventID,
		ClientID:       resp.ClientID,
		StartAt:        resp.StartAt.Format(time.RFC3339),
		NumberOfPeople: resp.NumberOfPeople,
		Status:         resp.Status,
		Price:          resp.Price,
		SeatsLeft:      resp.SeatsLeft,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
