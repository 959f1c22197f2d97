package list_services

import (
	"context"

	"github.com/herica-studio/StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
