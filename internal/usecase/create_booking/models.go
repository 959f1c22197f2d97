package create_booking

import (
	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          string           // Дата в формате YYYY-MM-DD
	StartTime     types.TimeString // Время начала визита
	ServiceIDs    []string         // Идентификаторы выбранных услуг
	CustomerName  string           // Имя клиента, пустое значение берется из профиля
	CustomerPhone string           // Телефон клиента, пустое значение берется из профиля
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking domain.BookedRecord
}
