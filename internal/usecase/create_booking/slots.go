package create_booking

import (
	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// isStartAvailable проверяет, что визит указанной длительности помещается
// с выбранного времени начала: начало лежит в сетке дня, визит не
// пересекается с бронированиями и сетка покрывает его без разрывов
func isStartAvailable(daySlots []types.TimeString, start types.TimeString, durationMinutes int, records []domain.BookedRecord) bool {
	if durationMinutes <= 0 {
		return false
	}

	startIdx := -1
	for i, slot := range daySlots {
		if slot == start {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return false
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	endMinutes := startMinutes + durationMinutes

	for _, rec := range records {
		interval, err := rec.Interval()
		if err != nil {
			continue
		}
		if interval.Overlaps(startMinutes, endMinutes) {
			return false
		}
	}

	// Покрытие: подряд идущие слоты сетки с шагом 30 минут
	covered := domain.SlotGranularityMinutes
	prev := startMinutes
	for j := startIdx + 1; j < len(daySlots) && covered < durationMinutes; j++ {
		m, err := daySlots[j].Minutes()
		if err != nil {
			return false
		}
		if m-prev != domain.SlotGranularityMinutes {
			break
		}
		prev = m
		covered += domain.SlotGranularityMinutes
	}

	return covered >= durationMinutes
}
