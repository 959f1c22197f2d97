package models

import "github.com/herica-studio/StudioBookingService/internal/domain"

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Photo           string  `json:"photo,omitempty"`
}

// UpdateServiceRequest запрос на изменение услуги каталога
type UpdateServiceRequest struct {
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Photo           string  `json:"photo,omitempty"`
}

// ServiceResponse ответ с услугой каталога
type ServiceResponse struct {
	Service domain.Service
}

// ListResponse ответ со списком услуг каталога
type ListResponse struct {
	Services []domain.Service
}
