package bookings

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория журнала бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]domain.BookedRecord, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.BookedRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
