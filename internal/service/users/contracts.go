package users

import (
	"context"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
)

// UserRepository интерфейс репозитория профиля клиента
type UserRepository interface {
	Read(ctx context.Context) (*domain.UserProfile, error)
	Write(ctx context.Context, profile *domain.UserProfile) error
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
