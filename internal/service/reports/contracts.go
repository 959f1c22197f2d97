package reports

import (
	"context"

	bookingsModels "github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

// BookingsLister интерфейс сервиса бронирований для отбора записей
type BookingsLister interface {
	ListFiltered(ctx context.Context, filter *bookingsModels.Filter) (*bookingsModels.ListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
