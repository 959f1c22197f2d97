package get_user_bookings

import "github.com/herica-studio/StudioBookingService/internal/domain"

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []domain.BookedRecord `json:"bookings"`
}
