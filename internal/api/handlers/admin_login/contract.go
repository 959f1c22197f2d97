package admin_login

import "context"

type AuthService interface {
	Verify(ctx context.Context, password string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
