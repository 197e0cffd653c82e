package models

import (
	"time"

	"github.com/m04kA/EDU-SchedulingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	UserID       int64   `json:"userId"`
	Role         string  `json:"role"`
	Status       *string `json:"status,omitempty"`
	UpcomingOnly bool    `json:"upcomingOnly,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64      `json:"id"`
	ProviderID      int64      `json:"providerId"`
	ClientID        int64      `json:"clientId"`
	ServiceType     string     `json:"serviceType"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Participants    int        `json:"numberOfPeople"`
	Status          string     `json:"status"`
	Price           float64    `json:"price"`
	Location        *string    `json:"location,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CancelReason    *string    `json:"cancellationReason,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ProviderID:      b.ProviderID,
		ClientID:        b.ClientID,
		ServiceType:     b.ServiceType,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		Participants:    b.Participants,
		Status:          string(b.Status),
		Price:           b.Price,
		Location:        b.Location,
		Notes:           b.Notes,
		CancelReason:    b.CancellationReason,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
