package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// monday фиксированный понедельник для детерминированных тестов
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func defaultSettings() *AvailabilitySettings {
	return DefaultAvailabilitySettings()
}

func TestGenerateDaySlots_DefaultHours(t *testing.T) {
	slots := GenerateDaySlots(DaySchedule{Working: true, StartTime: "09:00", EndTime: "17:00"})

	// 09:00 .. 16:30 с шагом 30 минут = 16 слотов
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
}

func TestGenerateDaySlots_StrictlyAscendingAndSpaced(t *testing.T) {
	slots := GenerateDaySlots(DaySchedule{Working: true, StartTime: "08:00", EndTime: "20:00"})
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotGranularityMinutes, cur-prev)
	}
}

func TestGenerateDaySlots_NonWorking(t *testing.T) {
	assert.Nil(t, GenerateDaySlots(DaySchedule{Working: false}))
}

func TestGenerateDaySlots_MalformedTimes(t *testing.T) {
	// Испорченные границы не должны ронять генерацию - день просто пропускается
	assert.Empty(t, GenerateDaySlots(DaySchedule{Working: true, StartTime: "9:00", EndTime: "17:00"}))
	assert.Empty(t, GenerateDaySlots(DaySchedule{Working: true, StartTime: "09:00", EndTime: "banana"}))
	assert.Empty(t, GenerateDaySlots(DaySchedule{Working: true, StartTime: "17:00", EndTime: "09:00"}))
}

func TestGenerateAvailability_SkipsNonWorkDays(t *testing.T) {
	availability := GenerateAvailability(defaultSettings(), monday, 7)

	// Понедельник-суббота рабочие, воскресенье (2025-09-07) отсутствует
	assert.Len(t, availability, 6)
	assert.NotContains(t, availability, "2025-09-07")
	assert.Contains(t, availability, "2025-09-01")
	assert.Contains(t, availability, "2025-09-06")
}

func TestGenerateAvailability_ClosedException(t *testing.T) {
	settings := defaultSettings()
	settings.SetException(ScheduleException{Date: "2025-09-02", IsWorking: false})

	availability := GenerateAvailability(settings, monday, 7)

	assert.NotContains(t, availability, "2025-09-02")
}

func TestGenerateAvailability_WorkingExceptionOverridesHours(t *testing.T) {
	settings := defaultSettings()
	settings.SetException(ScheduleException{
		Date:      "2025-09-03",
		IsWorking: true,
		StartTime: "12:00",
		EndTime:   "14:00",
	})

	availability := GenerateAvailability(settings, monday, 7)

	require.Contains(t, availability, "2025-09-03")
	assert.Equal(t,
		[]types.TimeString{"12:00", "12:30", "13:00", "13:30"},
		availability["2025-09-03"],
	)
}

func TestGenerateAvailability_ExceptionOpensNonWorkDay(t *testing.T) {
	settings := defaultSettings()
	// Воскресенье по умолчанию выходной, исключение открывает его
	settings.SetException(ScheduleException{
		Date:      "2025-09-07",
		IsWorking: true,
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	availability := GenerateAvailability(settings, monday, 7)

	require.Contains(t, availability, "2025-09-07")
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, availability["2025-09-07"])
}

func TestGenerateAvailability_MalformedExceptionSkipsDate(t *testing.T) {
	settings := defaultSettings()
	settings.SetException(ScheduleException{
		Date:      "2025-09-03",
		IsWorking: true,
		StartTime: "nonsense",
		EndTime:   "14:00",
	})

	availability := GenerateAvailability(settings, monday, 7)

	assert.NotContains(t, availability, "2025-09-03")
	// Остальные дни не затронуты
	assert.Contains(t, availability, "2025-09-04")
}

func TestGenerateAvailability_Idempotent(t *testing.T) {
	settings := defaultSettings()
	settings.SetException(ScheduleException{Date: "2025-09-02", IsWorking: false})

	first := GenerateAvailability(settings, monday, 30)
	second := GenerateAvailability(settings, monday, 30)

	assert.Equal(t, first, second)
}

func TestGenerateAvailability_HorizonBounds(t *testing.T) {
	availability := GenerateAvailability(defaultSettings(), monday, 1)

	assert.Len(t, availability, 1)
	assert.Contains(t, availability, "2025-09-01")
}

func TestSetException_LastWriteWinsPerDate(t *testing.T) {
	settings := defaultSettings()

	settings.SetException(ScheduleException{Date: "2025-09-10", IsWorking: false})
	settings.SetException(ScheduleException{
		Date:      "2025-09-10",
		IsWorking: true,
		StartTime: "10:00",
		EndTime:   "15:00",
	})

	require.Len(t, settings.Exceptions, 1)
	assert.True(t, settings.Exceptions[0].IsWorking)
	assert.Equal(t, types.TimeString("10:00"), settings.Exceptions[0].StartTime)
}

func TestSetException_SortedByDate(t *testing.T) {
	settings := defaultSettings()

	settings.SetException(ScheduleException{Date: "2025-09-20", IsWorking: false})
	settings.SetException(ScheduleException{Date: "2025-09-05", IsWorking: false})
	settings.SetException(ScheduleException{Date: "2025-09-12", IsWorking: false})

	require.Len(t, settings.Exceptions, 3)
	assert.Equal(t, "2025-09-05", settings.Exceptions[0].Date)
	assert.Equal(t, "2025-09-12", settings.Exceptions[1].Date)
	assert.Equal(t, "2025-09-20", settings.Exceptions[2].Date)
}

func TestTotalDuration(t *testing.T) {
	services := []ServiceRef{
		{ID: "a", DurationMinutes: 50},
		{ID: "b", DurationMinutes: 40},
	}

	// 50 + 40 + 2 буфера по 10 минут
	assert.Equal(t, 110, TotalDuration(services))
	assert.Equal(t, 0, TotalDuration(nil))
}

func TestBookedIntervalOverlaps(t *testing.T) {
	interval := BookedInterval{StartMinutes: 600, EndMinutes: 660} // 10:00-11:00

	assert.True(t, interval.Overlaps(630, 690))  // 10:30-11:30
	assert.True(t, interval.Overlaps(570, 630))  // 09:30-10:30
	assert.False(t, interval.Overlaps(570, 600)) // 09:30-10:00, граничат
	assert.False(t, interval.Overlaps(660, 690)) // 11:00-11:30, граничат
}
