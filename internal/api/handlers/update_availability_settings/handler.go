package update_availability_settings

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	availabilityService "github.com/herica-studio/StudioBookingService/internal/service/availability"
	"github.com/herica-studio/StudioBookingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWorkDays    = "некорректный список рабочих дней"
	msgInvalidTimeRange   = "некорректные рабочие часы, ожидается HH:MM и начало раньше конца"
	msgInvalidException   = "некорректное исключение расписания"
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

// Handle PUT /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.availabilityService.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidWorkDays):
			h.logger.Warn("PUT /admin/availability - Invalid work days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWorkDays)

		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/availability - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availabilityService.ErrInvalidException):
			h.logger.Warn("PUT /admin/availability - Invalid exception: %v", err)
			handlers.RespondBadRequest(w, msgInvalidException)

		default:
			h.logger.Error("PUT /admin/availability - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, settings)
}
