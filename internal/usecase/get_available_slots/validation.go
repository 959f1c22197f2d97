package get_available_slots

import (
	"fmt"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return ErrNoServicesSelected
	}
	for _, id := range req.ServiceIDs {
		if id == "" {
			return fmt.Errorf("%w: empty service id", ErrInvalidInput)
		}
	}
	return nil
}

// parseDate разбирает дату запроса в формате YYYY-MM-DD
func parseDate(date string) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return parsed, nil
}

// validateDate проверяет, что дата не в прошлом и внутри горизонта планирования
func validateDate(date, now time.Time, horizonDays int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if date.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	lastDate := today.AddDate(0, 0, horizonDays-1)
	if date.After(lastDate) {
		return ErrDateTooFarInFuture
	}

	return nil
}
