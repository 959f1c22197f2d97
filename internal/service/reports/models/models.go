package models

// SummaryResponse сводные показатели по отобранным записям журнала
type SummaryResponse struct {
	Bookings       int     `json:"bookings"`       // Количество визитов
	Revenue        float64 `json:"revenue"`        // Суммарная выручка
	Clients        int     `json:"clients"`        // Уникальные клиенты по телефону
	ServicesBooked int     `json:"servicesBooked"` // Количество оказанных услуг
}

// ExportResponse готовый CSV отчет
type ExportResponse struct {
	FileName string // Имя файла для заголовка Content-Disposition
	Content  []byte // Содержимое файла, UTF-8 с BOM
}
