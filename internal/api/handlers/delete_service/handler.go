package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	catalogService "github.com/herica-studio/StudioBookingService/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

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

// Handle DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.catalogService.Delete(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/%s - Service not found", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /admin/services/%s - Failed to delete service: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/%s - Service deleted", serviceID)
	w.WriteHeader(http.StatusNoContent)
}
