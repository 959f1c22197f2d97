package models

import "github.com/herica-studio/StudioBookingService/internal/domain"

// Filter параметры отбора записей журнала для админки
// Нулевые значения означают отсутствие фильтра
type Filter struct {
	Year       int      // Год визита
	Months     []int    // Месяцы визита, 1..12
	ServiceIDs []string // Хотя бы одна из услуг записи
}

// ListResponse ответ со списком записей журнала
type ListResponse struct {
	Bookings []domain.BookedRecord
}
