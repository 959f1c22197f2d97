package get_report_summary

import (
	"errors"
	"net/http"

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

// Handle GET /api/v1/admin/reports/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := handlers.ParseBookingsFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reports/summary - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	summary, err := h.reportsService.Summary(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidFilter):
			h.logger.Warn("GET /admin/reports/summary - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/reports/summary - Failed to build summary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}
