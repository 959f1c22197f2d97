package domain

import (
	"fmt"
	"strings"
	"time"
)

// Service услуга из каталога студии
type Service struct {
	ID              string  `json:"id"`
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Photo           string  `json:"photo,omitempty"` // base64
}

// Ref возвращает денормализованную ссылку на услугу для записи бронирования
func (s *Service) Ref() ServiceRef {
	return ServiceRef{
		ID:              s.ID,
		Category:        s.Category,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// NewServiceID генерирует идентификатор услуги вида "категория_timestamp"
// (строчные буквы, пробелы заменены подчеркиваниями)
func NewServiceID(category string, now time.Time) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "_")
	return fmt.Sprintf("%s_%d", slug, now.UnixMilli())
}
