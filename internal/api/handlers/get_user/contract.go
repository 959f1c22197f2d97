package get_user

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/service/users/models"
)

type UsersService interface {
	Get(ctx context.Context) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
