package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	catalogRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// UseCase use case для получения доступных времен начала визита
type UseCase struct {
	availabilityRepo AvailabilityRepository
	catalogRepo      CatalogRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		catalogRepo:      catalogRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, services=%d", req.Date, len(req.ServiceIDs))

	// 2. Разбираем и проверяем дату
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Считаем длительность визита по каталогу услуг
	services, err := uc.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	durationMinutes := domain.TotalDuration(services)

	// 4. Получаем настройки доступности, при отсутствии откатываемся к дефолтным
	settings, err := uc.availabilityRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) || errors.Is(err, availabilityRepo.ErrCorruptRecord) {
			uc.logger.Warn("GetAvailableSlots: settings unavailable, using defaults: %v", err)
			settings = domain.DefaultAvailabilitySettings()
		} else {
			uc.logger.Error("GetAvailableSlots: failed to read settings: %v", err)
			return nil, fmt.Errorf("%w: failed to read availability settings: %v", ErrInternal, err)
		}
	}

	// 5. Строим сетку слотов на запрошенную дату
	daySlots := domain.GenerateDaySlots(settings.EffectiveHours(date))
	if len(daySlots) == 0 {
		uc.logger.Info("GetAvailableSlots: studio is closed on %s", req.Date)
		return &Response{
			Date:            req.Date,
			DurationMinutes: durationMinutes,
			Slots:           []types.TimeString{},
		}, nil
	}

	// 6. Получаем бронирования на эту дату
	records, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 7. Отбираем времена начала, в которые визит помещается целиком
	booked := bookedIntervalsForDay(records)
	slots := filterAvailableSlots(daySlots, durationMinutes, booked)

	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d, %d of %d slots available",
		req.Date, durationMinutes, len(slots), len(daySlots))

	return &Response{
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}

// resolveServices находит выбранные услуги в каталоге
func (uc *UseCase) resolveServices(ctx context.Context, serviceIDs []string) ([]domain.ServiceRef, error) {
	catalog, err := uc.catalogRepo.List(ctx)
	if err != nil {
		// Пустой каталог означает, что ни одна услуга не найдется
		if errors.Is(err, catalogRepo.ErrCatalogNotFound) {
			catalog = nil
		} else {
			uc.logger.Error("GetAvailableSlots: failed to load catalog: %v", err)
			return nil, fmt.Errorf("%w: failed to load service catalog: %v", ErrInternal, err)
		}
	}

	byID := make(map[string]domain.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	refs := make([]domain.ServiceRef, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, ok := byID[id]
		if !ok {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", id)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		refs = append(refs, svc.Ref())
	}

	return refs, nil
}
