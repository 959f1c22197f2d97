package get_available_dates

import (
	"net/http"
	"strconv"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	getAvailableDates "github.com/herica-studio/StudioBookingService/internal/usecase/get_available_dates"
)

const msgInvalidDays = "некорректный параметр days"

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /availability/dates - Invalid days param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{Days: days})
	if err != nil {
		h.logger.Error("GET /availability/dates - Failed to get dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DatesResponse{Dates: result.Dates})
}
