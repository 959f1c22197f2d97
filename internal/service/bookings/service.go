package bookings

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

// Service сервис для чтения журнала бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListByPhone возвращает записи клиента по телефону,
// отсортированные по дате и времени визита
func (s *Service) ListByPhone(ctx context.Context, phone string) (*models.ListResponse, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidFilter)
	}

	records, err := s.bookingRepo.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("ListByPhone: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	sortByVisit(records)

	return &models.ListResponse{Bookings: records}, nil
}

// ListFiltered возвращает записи журнала по фильтру админки
func (s *Service) ListFiltered(ctx context.Context, filter *models.Filter) (*models.ListResponse, error) {
	if err := validateFilter(filter); err != nil {
		s.logger.Warn("ListFiltered: validation failed: %v", err)
		return nil, err
	}

	records, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListFiltered: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	filtered := make([]domain.BookedRecord, 0, len(records))
	for _, rec := range records {
		if matchesFilter(&rec, filter) {
			filtered = append(filtered, rec)
		}
	}

	sortByVisit(filtered)

	s.logger.Info("ListFiltered: %d of %d bookings match", len(filtered), len(records))

	return &models.ListResponse{Bookings: filtered}, nil
}

// validateFilter проверяет параметры фильтра
func validateFilter(filter *models.Filter) error {
	if filter == nil {
		return nil
	}
	for _, m := range filter.Months {
		if m < 1 || m > 12 {
			return fmt.Errorf("%w: month %d out of range 1..12", ErrInvalidFilter, m)
		}
	}
	return nil
}

// matchesFilter проверяет запись против фильтра
// Записи с нечитаемой датой отбрасываются только фильтрами по дате
func matchesFilter(rec *domain.BookedRecord, filter *models.Filter) bool {
	if filter == nil {
		return true
	}

	if filter.Year != 0 || len(filter.Months) > 0 {
		date, err := time.ParseInLocation(domain.DateFormat, rec.Date, time.UTC)
		if err != nil {
			return false
		}
		if filter.Year != 0 && date.Year() != filter.Year {
			return false
		}
		if len(filter.Months) > 0 {
			found := false
			for _, m := range filter.Months {
				if int(date.Month()) == m {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	if len(filter.ServiceIDs) > 0 {
		found := false
		for _, svc := range rec.Services {
			for _, id := range filter.ServiceIDs {
				if svc.ID == id {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// sortByVisit сортирует записи по дате, затем по времени визита
func sortByVisit(records []domain.BookedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].Time.IsBefore(records[j].Time)
	})
}
