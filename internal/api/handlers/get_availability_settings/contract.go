package get_availability_settings

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
