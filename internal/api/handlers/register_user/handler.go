package register_user

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	usersService "github.com/herica-studio/StudioBookingService/internal/service/users"
	"github.com/herica-studio/StudioBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProfile     = "некорректные данные профиля"
)

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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.usersService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidProfile):
			h.logger.Warn("POST /users - Invalid profile data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfile)

		default:
			h.logger.Error("POST /users - Failed to register profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - Profile registered: phone=%s", profile.Phone)
	handlers.RespondJSON(w, http.StatusCreated, profile)
}
