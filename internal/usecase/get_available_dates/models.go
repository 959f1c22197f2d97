package get_available_dates

// Request модель запроса на получение доступных дат
type Request struct {
	Days int // Глубина просмотра в днях, 0 означает настроенный горизонт
}

// Response модель ответа со списком доступных дат
type Response struct {
	Dates []string // Даты в формате YYYY-MM-DD по возрастанию
}
