package get_admin_bookings

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListFiltered(ctx context.Context, filter *models.Filter) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
