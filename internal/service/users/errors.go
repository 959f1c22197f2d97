package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда профиль еще не зарегистрирован
	ErrUserNotFound = errors.New("user profile not found")

	// ErrInvalidProfile возвращается при некорректных данных профиля
	ErrInvalidProfile = errors.New("invalid profile data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
