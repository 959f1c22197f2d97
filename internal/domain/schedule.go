package domain

import (
	"time"

	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// GenerateDaySlots генерирует сетку стартов слотов для рабочих часов дня
// Слоты идут с шагом SlotGranularityMinutes от начала работы и
// заканчиваются строго раньше закрытия (влезает ли услуга целиком -
// проверяет аллокатор, не генератор)
//
// Некорректные границы (ошибка формата, start >= end) дают пустую сетку:
// испорченное исключение не должно ронять генерацию календаря
func GenerateDaySlots(sched DaySchedule) []types.TimeString {
	if !sched.Working {
		return nil
	}

	start, err := sched.StartTime.Minutes()
	if err != nil {
		return nil
	}
	end, err := sched.EndTime.Minutes()
	if err != nil {
		return nil
	}
	if start >= end {
		return nil
	}

	slots := make([]types.TimeString, 0, (end-start)/SlotGranularityMinutes)
	for m := start; m < end; m += SlotGranularityMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// GenerateAvailability разворачивает настройки доступности в конкретную
// сетку слотов на диапазон [today, today+horizonDays)
//
// Ключ результата - дата в формате YYYY-MM-DD. Нерабочие дни (выходной по
// недельному расписанию или исключение с isWorking=false) в результат не
// попадают. Чистая функция от (settings, today, horizonDays)
func GenerateAvailability(settings *AvailabilitySettings, today time.Time, horizonDays int) map[string][]types.TimeString {
	availability := make(map[string][]types.TimeString)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for i := 0; i < horizonDays; i++ {
		date := day.AddDate(0, 0, i)

		slots := GenerateDaySlots(settings.EffectiveHours(date))
		if len(slots) == 0 {
			continue
		}

		availability[date.Format(DateFormat)] = slots
	}

	return availability
}
