package change_password

import (
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	authService "github.com/herica-studio/StudioBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "неверный текущий пароль"
	msgInvalidPassword    = "новый пароль не может быть пустым"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ChangePasswordResponse struct {
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

// Handle PUT /api/v1/admin/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, authService.ErrWrongPassword):
			h.logger.Warn("PUT /admin/password - Wrong current password")
			handlers.RespondUnauthorized(w, msgWrongPassword)

		case errors.Is(err, authService.ErrInvalidPassword):
			h.logger.Warn("PUT /admin/password - Invalid new password")
			handlers.RespondBadRequest(w, msgInvalidPassword)

		default:
			h.logger.Error("PUT /admin/password - Failed to change password: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/password - Password changed")
	handlers.RespondJSON(w, http.StatusOK, ChangePasswordResponse{Success: true})
}
