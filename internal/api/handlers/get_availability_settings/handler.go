package get_availability_settings

import (
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
)

type Handler struct {
	availabilityService AvailabilityService
	logger              Logger
}

func NewHandler(availabilityService AvailabilityService, logger Logger) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Handle GET /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.availabilityService.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability - Failed to read settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
