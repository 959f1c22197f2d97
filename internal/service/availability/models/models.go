package models

import "github.com/herica-studio/StudioBookingService/internal/domain"

// UpdateSettingsRequest запрос на обновление настроек доступности
type UpdateSettingsRequest struct {
	WorkDays   []int                      `json:"workDays"`
	StartTime  string                     `json:"startTime"`
	EndTime    string                     `json:"endTime"`
	Exceptions []domain.ScheduleException `json:"exceptions"`
}

// SettingsResponse ответ с настройками доступности
type SettingsResponse struct {
	WorkDays   []int                      `json:"workDays"`
	StartTime  string                     `json:"startTime"`
	EndTime    string                     `json:"endTime"`
	Exceptions []domain.ScheduleException `json:"exceptions"`
}

// FromDomain собирает ответ из доменной модели настроек
func FromDomain(settings *domain.AvailabilitySettings) *SettingsResponse {
	exceptions := settings.Exceptions
	if exceptions == nil {
		exceptions = []domain.ScheduleException{}
	}
	return &SettingsResponse{
		WorkDays:   settings.WorkDays,
		StartTime:  string(settings.StartTime),
		EndTime:    string(settings.EndTime),
		Exceptions: exceptions,
	}
}
