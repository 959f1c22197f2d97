package availability

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория настроек доступности
type AvailabilityRepository interface {
	Read(ctx context.Context) (*domain.AvailabilitySettings, error)
	Write(ctx context.Context, settings *domain.AvailabilitySettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
