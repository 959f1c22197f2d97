package get_available_slots

import (
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date       string   // Дата в формате YYYY-MM-DD
	ServiceIDs []string // Идентификаторы выбранных услуг
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string             // Дата, на которую запрашивались слоты
	DurationMinutes int                // Суммарная длительность визита с буферами
	Slots           []types.TimeString // Доступные времена начала по возрастанию
}
