package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	"github.com/herica-studio/StudioBookingService/internal/domain"
	bookingsService "github.com/herica-studio/StudioBookingService/internal/service/bookings"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type BookingsResponse struct {
	Bookings []domain.BookedRecord `json:"bookings"`
}

type Handler struct {
	bookingsService BookingsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		logger:          logger,
	}
}

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := handlers.ParseBookingsFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	resp, err := h.bookingsService.ListFiltered(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidFilter):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingsResponse{Bookings: resp.Bookings})
}
