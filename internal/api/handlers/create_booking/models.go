package create_booking

import (
	"time"

	createBooking "github.com/m04kA/EDU-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID      int64   `json:"providerId"`
	ServiceType     string  `json:"serviceType"`
	StartTime       string  `json:"startTime"` // RFC3339, например "2026-09-15T14:00:00Z"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	Location        *string `json:"location,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProviderID      int64   `json:"providerId"`
	ClientID        int64   `json:"clientId"`
	ServiceType     string  `json:"serviceType"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	Location        *string `json:"location,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	people := r.NumberOfPeople
	if people == 0 {
		people = 1
	}

	return &createBooking.Request{
		ClientID:        clientID,
		ProviderID:      r.ProviderID,
		ServiceType:     r.ServiceType,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Participants:    people,
		Location:        r.Location,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ProviderID:      resp.ProviderID,
		ClientID:        resp.ClientID,
		ServiceType:     resp.ServiceType,
		StartTime:       resp.StartTime.Format(time.RFC3339),
		EndTime:         resp.EndTime.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		NumberOfPeople:  resp.Participants,
		Status:          resp.Status,
		Price:           resp.Price,
		Location:        resp.Location,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
