package get_user

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	usersService "github.com/herica-studio/StudioBookingService/internal/service/users"
)

const msgUserNotFound = "профиль клиента не найден"

type Handler struct {
	usersService UsersService
	logger       Logger
}

func NewHandler(usersService UsersService, logger Logger) *Handler {
	return &Handler{
		usersService: usersService,
		logger:       logger,
	}
}

// Handle GET /api/v1/users/current
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profile, err := h.usersService.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /users/current - Profile not registered")
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/current - Failed to read profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
