package get_provider_bookings

import (
	"context"

	"github.com/m04kA/EDU-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	GetProviderBookings(ctx context.Context, providerID int64, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
