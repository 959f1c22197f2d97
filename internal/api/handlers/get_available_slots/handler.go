package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	getAvailableSlots "github.com/herica-studio/StudioBookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "требуется параметр date в формате YYYY-MM-DD"
	msgMissingServices    = "требуется параметр serviceIds"
	msgInvalidDate        = "некорректная дата"
	msgDateTooFar         = "дата слишком далеко в будущем"
	msgServiceNotFound    = "услуга не найдена"
	msgNoServicesSelected = "не выбрано ни одной услуги"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	rawServices := query.Get("serviceIds")
	if rawServices == "" {
		handlers.RespondBadRequest(w, msgMissingServices)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:       date,
		ServiceIDs: parseServiceIDs(rawServices),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability/slots - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /availability/slots - Date too far in future: %s", date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrNoServicesSelected),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - No services selected")
			handlers.RespondBadRequest(w, msgNoServicesSelected)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability/slots - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
