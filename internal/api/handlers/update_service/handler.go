package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	catalogService "github.com/herica-studio/StudioBookingService/internal/service/catalog"
	"github.com/herica-studio/StudioBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidService     = "некорректные данные услуги"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/%s - Invalid request body: %v", serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.catalogService.Update(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidService):
			h.logger.Warn("PUT /admin/services/%s - Invalid service data: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/%s - Service not found", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /admin/services/%s - Failed to update service: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/%s - Service updated", serviceID)
	handlers.RespondJSON(w, http.StatusOK, resp.Service)
}
