package bookings

import "errors"

var (
	// ErrInvalidFilter возвращается при некорректных параметрах фильтра
	ErrInvalidFilter = errors.New("invalid bookings filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
