package export_report

import (
	"context"
	"time"

	bookingsModels "github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
	"github.com/herica-studio/StudioBookingService/internal/service/reports/models"
)

type ReportsService interface {
	ExportCSV(ctx context.Context, filter *bookingsModels.Filter, now time.Time) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
