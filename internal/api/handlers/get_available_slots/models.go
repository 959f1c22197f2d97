package get_available_slots

import (
	"strings"

	getAvailableSlots "github.com/herica-studio/StudioBookingService/internal/usecase/get_available_slots"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date            string             `json:"date"`
	DurationMinutes int                `json:"durationMinutes"`
	Slots           []types.TimeString `json:"slots"`
}

// parseServiceIDs разбирает параметр serviceIds вида "a,b,c"
func parseServiceIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		Date:            resp.Date,
		DurationMinutes: resp.DurationMinutes,
		Slots:           resp.Slots,
	}
}
