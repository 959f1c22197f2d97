package availability

import "errors"

var (
	// ErrInvalidWorkDays возвращается при некорректном списке рабочих дней
	ErrInvalidWorkDays = errors.New("invalid work days")

	// ErrInvalidTimeRange возвращается, когда времена не в формате HH:MM
	// или начало не раньше конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidException возвращается при некорректном исключении расписания
	ErrInvalidException = errors.New("invalid schedule exception")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
