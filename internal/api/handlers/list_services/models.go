package list_services

import "github.com/herica-studio/StudioBookingService/internal/domain"

// ListServicesResponse HTTP response model
type ListServicesResponse struct {
	Services []domain.Service `json:"services"`
}
