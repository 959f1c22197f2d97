package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/herica-studio/StudioBookingService/internal/api/handlers"
	authService "github.com/herica-studio/StudioBookingService/internal/service/auth"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

const (
	msgMissingPassword = "требуется заголовок X-Admin-Password"
	msgWrongPassword   = "неверный пароль администратора"
)

// PasswordVerifier интерфейс проверки пароля администратора
type PasswordVerifier interface {
	Verify(ctx context.Context, password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет пароль администратора из заголовка запроса
func AdminAuth(verifier PasswordVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			password := r.Header.Get(AdminPasswordHeader)
			if password == "" {
				logger.Warn("%s %s - missing admin password header", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingPassword)
				return
			}

			if err := verifier.Verify(r.Context(), password); err != nil {
				if errors.Is(err, authService.ErrWrongPassword) {
					logger.Warn("%s %s - wrong admin password", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgWrongPassword)
					return
				}
				logger.Error("%s %s - password verification failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
