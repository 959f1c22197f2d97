package domain

import (
	"time"

	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// ServiceRef денормализованная копия услуги внутри записи бронирования
// Хранится целиком, чтобы история не менялась при правках каталога
type ServiceRef struct {
	ID              string  `json:"id"`
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

// BookedRecord подтвержденное бронирование в журнале
type BookedRecord struct {
	Reference       string           `json:"reference"` // публичный идентификатор брони
	Date            string           `json:"date"`      // YYYY-MM-DD
	Time            types.TimeString `json:"time"`      // HH:MM
	DurationMinutes int              `json:"duration"`  // полная длительность с буферами
	CustomerName    string           `json:"userName"`
	CustomerPhone   string           `json:"userPhone"`
	Services        []ServiceRef     `json:"services"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// BookedInterval полуоткрытый интервал занятости [StartMinutes, EndMinutes)
// в минутах от полуночи; производное представление для проверки коллизий
type BookedInterval struct {
	StartMinutes int
	EndMinutes   int
}

// Interval возвращает интервал занятости записи
func (b *BookedRecord) Interval() (BookedInterval, error) {
	start, err := b.Time.Minutes()
	if err != nil {
		return BookedInterval{}, err
	}
	return BookedInterval{
		StartMinutes: start,
		EndMinutes:   start + b.DurationMinutes,
	}, nil
}

// TotalPrice возвращает суммарную стоимость услуг записи
func (b *BookedRecord) TotalPrice() float64 {
	var total float64
	for _, s := range b.Services {
		total += s.Price
	}
	return total
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func (i BookedInterval) Overlaps(startMinutes, endMinutes int) bool {
	return startMinutes < i.EndMinutes && endMinutes > i.StartMinutes
}

// TotalDuration возвращает полную длительность набора услуг:
// сумма длительностей плюс ServiceBufferMinutes за каждую услугу
func TotalDuration(services []ServiceRef) int {
	if len(services) == 0 {
		return 0
	}
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total + len(services)*ServiceBufferMinutes
}
