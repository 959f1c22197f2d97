package auth

import "context"

// CredentialsRepository интерфейс репозитория учетных данных администратора
type CredentialsRepository interface {
	ReadHash(ctx context.Context) (string, error)
	WriteHash(ctx context.Context, hash string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
