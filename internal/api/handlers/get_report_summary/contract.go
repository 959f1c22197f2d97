package get_report_summary

import (
	"context"

	bookingsModels "github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
	"github.com/herica-studio/StudioBookingService/internal/service/reports/models"
)

type ReportsService interface {
	Summary(ctx context.Context, filter *bookingsModels.Filter) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
