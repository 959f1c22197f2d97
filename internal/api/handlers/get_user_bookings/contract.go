package get_user_bookings

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListByPhone(ctx context.Context, phone string) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
