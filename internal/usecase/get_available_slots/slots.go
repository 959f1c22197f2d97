package get_available_slots

import (
	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// bookedIntervalsForDay переводит записи журнала в занятые интервалы минут
// Записи с нечитаемым временем пропускаются, они не могут заблокировать слоты
func bookedIntervalsForDay(records []domain.BookedRecord) []domain.BookedInterval {
	intervals := make([]domain.BookedInterval, 0, len(records))
	for _, rec := range records {
		interval, err := rec.Interval()
		if err != nil {
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// overlapsAny проверяет пересечение интервала [start, start+duration)
// хотя бы с одним занятым интервалом
func overlapsAny(startMinutes, durationMinutes int, booked []domain.BookedInterval) bool {
	endMinutes := startMinutes + durationMinutes
	for _, interval := range booked {
		if interval.Overlaps(startMinutes, endMinutes) {
			return true
		}
	}
	return false
}

// filterAvailableSlots отбирает из сетки дня времена, с которых визит
// указанной длительности помещается целиком
//
// Время начала подходит, если визит не пересекается ни с одним
// бронированием и сетка покрывает визит без разрывов: подряд идущие
// слоты с шагом 30 минут дают не меньше durationMinutes покрытия.
// Разрыв в сетке (например, обеденный перерыв) обрывает покрытие,
// поэтому визит не может перешагнуть через него. Последний слот сетки
// покрывает ровно 30 минут, так что визит всегда заканчивается не
// позже конца рабочего дня
func filterAvailableSlots(daySlots []types.TimeString, durationMinutes int, booked []domain.BookedInterval) []types.TimeString {
	available := make([]types.TimeString, 0, len(daySlots))
	if durationMinutes <= 0 {
		return available
	}

	// Сетка приходит из генератора расписания, времена в ней канонические
	minutes := make([]int, len(daySlots))
	for i, slot := range daySlots {
		m, err := slot.Minutes()
		if err != nil {
			return available
		}
		minutes[i] = m
	}

	for i, start := range minutes {
		if overlapsAny(start, durationMinutes, booked) {
			continue
		}

		covered := domain.SlotGranularityMinutes
		prev := start
		for j := i + 1; j < len(minutes) && covered < durationMinutes; j++ {
			if minutes[j]-prev != domain.SlotGranularityMinutes {
				break
			}
			prev = minutes[j]
			covered += domain.SlotGranularityMinutes
		}

		if covered >= durationMinutes {
			available = append(available, daySlots[i])
		}
	}

	return available
}
