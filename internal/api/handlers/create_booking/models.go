package create_booking

import (
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	createBooking "github.com/herica-studio/StudioBookingService/internal/usecase/create_booking"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date       string   `json:"date"`      // "2025-10-15"
	StartTime  string   `json:"startTime"` // "10:00"
	ServiceIDs []string `json:"serviceIds"`
	UserName   string   `json:"userName,omitempty"`
	UserPhone  string   `json:"userPhone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Reference       string              `json:"reference"`
	Date            string              `json:"date"`
	Time            string              `json:"time"`
	DurationMinutes int                 `json:"duration"`
	UserName        string              `json:"userName"`
	UserPhone       string              `json:"userPhone"`
	Services        []domain.ServiceRef `json:"services"`
	TotalPrice      float64             `json:"totalPrice"`
	CreatedAt       string              `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:          r.Date,
		StartTime:     types.TimeString(r.StartTime),
		ServiceIDs:    r.ServiceIDs,
		CustomerName:  r.UserName,
		CustomerPhone: r.UserPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := resp.Booking
	return &BookingResponse{
		Reference:       booking.Reference,
		Date:            booking.Date,
		Time:            booking.Time.String(),
		DurationMinutes: booking.DurationMinutes,
		UserName:        booking.CustomerName,
		UserPhone:       booking.CustomerPhone,
		Services:        booking.Services,
		TotalPrice:      booking.TotalPrice(),
		CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
	}
}
