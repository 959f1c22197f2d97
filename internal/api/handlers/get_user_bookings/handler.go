package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	bookingsService "github.com/herica-studio/StudioBookingService/internal/service/bookings"
)

const msgMissingPhone = "требуется параметр phone"

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	resp, err := h.bookingsService.ListByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidFilter):
			h.logger.Warn("GET /bookings - Missing phone param")
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingsResponse{Bookings: resp.Bookings})
}
