package export_report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	bookingsService "github.com/herica-studio/StudioBookingService/internal/service/bookings"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type Handler struct {
	reportsService ReportsService
	logger         Logger
}

func NewHandler(reportsService ReportsService, logger Logger) *Handler {
	return &Handler{
		reportsService: reportsService,
		logger:         logger,
	}
}

// Handle GET /api/v1/admin/reports/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := handlers.ParseBookingsFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reports/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	export, err := h.reportsService.ExportCSV(r.Context(), filter, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidFilter):
			h.logger.Warn("GET /admin/reports/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/reports/export - Failed to export report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reports/export - Report exported: %s", export.FileName)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
