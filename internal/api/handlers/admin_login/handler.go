package admin_login

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	authService "github.com/herica-studio/StudioBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "неверный пароль администратора"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.authService.Verify(r.Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, authService.ErrWrongPassword):
			h.logger.Warn("POST /admin/login - Wrong password attempt")
			handlers.RespondUnauthorized(w, msgWrongPassword)

		default:
			h.logger.Error("POST /admin/login - Failed to verify password: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}
