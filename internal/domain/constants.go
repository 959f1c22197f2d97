package domain

import "github.com/herica-studio/StudioBookingService/pkg/types"

// Slot grid constants
const (
	// SlotGranularityMinutes фиксированный шаг сетки слотов
	SlotGranularityMinutes = 30

	// ServiceBufferMinutes буфер, добавляемый к каждой выбранной услуге
	ServiceBufferMinutes = 10

	// DefaultHorizonDays горизонт генерации доступности по умолчанию
	DefaultHorizonDays = 60
)

// Default availability settings (Monday-Saturday, 9 AM to 5 PM)
var DefaultWorkDays = []int{1, 2, 3, 4, 5, 6}

const (
	DefaultStartTime types.TimeString = "09:00"
	DefaultEndTime   types.TimeString = "17:00"
)

// Weekday index bounds (Sunday=0 .. Saturday=6)
const (
	MinWeekday = 0
	MaxWeekday = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxServiceNameLength     = 120
	MaxServiceCategoryLength = 80
	MaxCustomerNameLength    = 120
	MinServiceDuration       = 5
	MaxServiceDuration       = 480 // 8 hours
)
