package domain

import (
	"sort"
	"time"

	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// ScheduleException переопределение расписания на конкретную дату
// Если IsWorking = false, день закрыт и время не учитывается
type ScheduleException struct {
	Date      string           `json:"date"` // YYYY-MM-DD
	IsWorking bool             `json:"isWorking"`
	StartTime types.TimeString `json:"startTime,omitempty"`
	EndTime   types.TimeString `json:"endTime,omitempty"`
}

// AvailabilitySettings настройки доступности мастера:
// повторяющееся недельное расписание плюс исключения по датам
type AvailabilitySettings struct {
	WorkDays   []int               `json:"workDays"` // 0 = воскресенье .. 6 = суббота
	StartTime  types.TimeString    `json:"startTime"`
	EndTime    types.TimeString    `json:"endTime"`
	Exceptions []ScheduleException `json:"exceptions"` // отсортированы по дате, не более одного на дату
}

// DefaultAvailabilitySettings возвращает настройки по умолчанию:
// понедельник-суббота, 09:00-17:00, без исключений
func DefaultAvailabilitySettings() *AvailabilitySettings {
	workDays := make([]int, len(DefaultWorkDays))
	copy(workDays, DefaultWorkDays)

	return &AvailabilitySettings{
		WorkDays:   workDays,
		StartTime:  DefaultStartTime,
		EndTime:    DefaultEndTime,
		Exceptions: []ScheduleException{},
	}
}

// IsWorkDay возвращает true, если день недели входит в рабочие дни
func (s *AvailabilitySettings) IsWorkDay(weekday time.Weekday) bool {
	for _, d := range s.WorkDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// ExceptionFor возвращает исключение для даты (YYYY-MM-DD), если оно есть
func (s *AvailabilitySettings) ExceptionFor(date string) *ScheduleException {
	for i := range s.Exceptions {
		if s.Exceptions[i].Date == date {
			return &s.Exceptions[i]
		}
	}
	return nil
}

// SetException добавляет или заменяет исключение для даты
// Инвариант "не более одного исключения на дату" поддерживается здесь:
// последняя запись для даты вытесняет предыдущую
func (s *AvailabilitySettings) SetException(ex ScheduleException) {
	filtered := make([]ScheduleException, 0, len(s.Exceptions)+1)
	for _, existing := range s.Exceptions {
		if existing.Date != ex.Date {
			filtered = append(filtered, existing)
		}
	}
	filtered = append(filtered, ex)
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date < filtered[j].Date
	})
	s.Exceptions = filtered
}

// RemoveException удаляет исключение для даты, если оно есть
func (s *AvailabilitySettings) RemoveException(date string) {
	filtered := make([]ScheduleException, 0, len(s.Exceptions))
	for _, existing := range s.Exceptions {
		if existing.Date != date {
			filtered = append(filtered, existing)
		}
	}
	s.Exceptions = filtered
}

// DaySchedule эффективные рабочие часы на конкретную дату
type DaySchedule struct {
	Working   bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// EffectiveHours возвращает рабочие часы на дату с учетом исключений
// Исключение полностью переопределяет и рабочий статус дня, и часы
func (s *AvailabilitySettings) EffectiveHours(date time.Time) DaySchedule {
	key := date.Format(DateFormat)

	if ex := s.ExceptionFor(key); ex != nil {
		if !ex.IsWorking {
			return DaySchedule{Working: false}
		}
		return DaySchedule{Working: true, StartTime: ex.StartTime, EndTime: ex.EndTime}
	}

	if !s.IsWorkDay(date.Weekday()) {
		return DaySchedule{Working: false}
	}

	return DaySchedule{Working: true, StartTime: s.StartTime, EndTime: s.EndTime}
}
