package auth

import "errors"

var (
	// ErrWrongPassword возвращается, когда пароль не подходит
	ErrWrongPassword = errors.New("wrong admin password")

	// ErrInvalidPassword возвращается при некорректном новом пароле
	ErrInvalidPassword = errors.New("invalid new password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
