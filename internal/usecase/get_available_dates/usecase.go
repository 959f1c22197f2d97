package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
)

// UseCase use case для получения списка дат с рабочими слотами
type UseCase struct {
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем глубину просмотра, не дальше настроенного горизонта
	days := uc.horizonDays
	if req != nil && req.Days > 0 && req.Days < uc.horizonDays {
		days = req.Days
	}

	// 2. Получаем настройки доступности, при отсутствии откатываемся к дефолтным
	settings, err := uc.availabilityRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) || errors.Is(err, availabilityRepo.ErrCorruptRecord) {
			uc.logger.Warn("GetAvailableDates: settings unavailable, using defaults: %v", err)
			settings = domain.DefaultAvailabilitySettings()
		} else {
			uc.logger.Error("GetAvailableDates: failed to read settings: %v", err)
			return nil, fmt.Errorf("%w: failed to read availability settings: %v", ErrInternal, err)
		}
	}

	// 3. Разворачиваем расписание на запрошенную глубину
	today := uc.timeProvider.Now()
	availability := domain.GenerateAvailability(settings, today, days)

	// 4. Собираем даты, у которых есть хотя бы один слот
	dates := make([]string, 0, len(availability))
	for date := range availability {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	uc.logger.Info("GetAvailableDates: %d working dates within %d days", len(dates), days)

	return &Response{Dates: dates}, nil
}
