package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	// или визит не помещается в рабочие часы
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrStudioClosed возвращается, когда студия закрыта в указанную дату
	ErrStudioClosed = errors.New("studio is closed on this date")

	// ErrInvalidTimeSlot возвращается при некорректном времени начала
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт планирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrNoServicesSelected возвращается при пустом списке услуг
	ErrNoServicesSelected = errors.New("no services selected")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrUserNotFound возвращается, когда профиль клиента не зарегистрирован
	ErrUserNotFound = errors.New("user profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
