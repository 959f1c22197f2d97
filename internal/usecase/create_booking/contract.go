package create_booking

import (
	"context"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория настроек доступности
type AvailabilityRepository interface {
	Read(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
}

// BookingRepository интерфейс репозитория журнала бронирований
type BookingRepository interface {
	// ListByDate получает все бронирования на конкретную дату
	ListByDate(ctx context.Context, date string) ([]domain.BookedRecord, error)
	// Append добавляет запись в журнал бронирований
	Append(ctx context.Context, record domain.BookedRecord) error
}

// UserRepository интерфейс репозитория профиля клиента
type UserRepository interface {
	Read(ctx context.Context) (*domain.UserProfile, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в сериализуемой транзакции
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
