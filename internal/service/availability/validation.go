package availability

import (
	"fmt"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/internal/service/availability/models"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// validateUpdateRequest проверяет корректность запроса на обновление настроек
func validateUpdateRequest(req *models.UpdateSettingsRequest) error {
	if len(req.WorkDays) == 0 {
		return fmt.Errorf("%w: at least one work day is required", ErrInvalidWorkDays)
	}

	seen := make(map[int]bool, len(req.WorkDays))
	for _, d := range req.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: day index %d out of range 0..6", ErrInvalidWorkDays, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate day index %d", ErrInvalidWorkDays, d)
		}
		seen[d] = true
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return err
	}

	exceptionDates := make(map[string]bool, len(req.Exceptions))
	for _, ex := range req.Exceptions {
		if err := validateException(ex); err != nil {
			return err
		}
		if exceptionDates[ex.Date] {
			return fmt.Errorf("%w: duplicate exception for date %s", ErrInvalidException, ex.Date)
		}
		exceptionDates[ex.Date] = true
	}

	return nil
}

// validateTimeRange проверяет пару времен HH:MM и порядок начала и конца
func validateTimeRange(start, end string) error {
	if err := types.TimeString(start).Validate(); err != nil {
		return fmt.Errorf("%w: start time %q: %v", ErrInvalidTimeRange, start, err)
	}
	if err := types.TimeString(end).Validate(); err != nil {
		return fmt.Errorf("%w: end time %q: %v", ErrInvalidTimeRange, end, err)
	}
	if start >= end {
		return fmt.Errorf("%w: start %q must be before end %q", ErrInvalidTimeRange, start, end)
	}
	return nil
}

// validateException проверяет исключение расписания
// Для закрытого дня времена не учитываются и не проверяются
func validateException(ex domain.ScheduleException) error {
	if _, err := time.ParseInLocation(domain.DateFormat, ex.Date, time.UTC); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidException, ex.Date)
	}
	if !ex.IsWorking {
		return nil
	}
	if err := validateTimeRange(string(ex.StartTime), string(ex.EndTime)); err != nil {
		return fmt.Errorf("%w: date %s: %v", ErrInvalidException, ex.Date, err)
	}
	return nil
}
