package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	catalogRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/catalog"
	userRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	availabilityRepo AvailabilityRepository
	catalogRepo      CatalogRepository
	bookingRepo      BookingRepository
	userRepo         UserRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	horizonDays      int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
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
		userRepo:         userRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		horizonDays:      horizonDays,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: date=%s, time=%s, services=%d",
		req.Date, req.StartTime, len(req.ServiceIDs))

	// 2. Разбираем и проверяем дату
	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(date, now, uc.horizonDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Определяем клиента: из запроса или из сохраненного профиля
	customerName := req.CustomerName
	customerPhone := req.CustomerPhone
	if customerName == "" || customerPhone == "" {
		profile, err := uc.userRepo.Read(ctx)
		if err != nil {
			if errors.Is(err, userRepo.ErrProfileNotFound) {
				uc.logger.Warn("CreateBooking: user profile not registered and customer fields missing")
				return nil, ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to read user profile: %v", err)
			return nil, fmt.Errorf("%w: failed to read user profile: %v", ErrInternal, err)
		}
		if customerName == "" {
			customerName = profile.Name
		}
		if customerPhone == "" {
			customerPhone = profile.Phone
		}
	}

	// 4. Находим выбранные услуги в каталоге
	services, err := uc.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	durationMinutes := domain.TotalDuration(services)

	// 5. Получаем настройки доступности, при отсутствии откатываемся к дефолтным
	settings, err := uc.availabilityRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) || errors.Is(err, availabilityRepo.ErrCorruptRecord) {
			uc.logger.Warn("CreateBooking: settings unavailable, using defaults: %v", err)
			settings = domain.DefaultAvailabilitySettings()
		} else {
			uc.logger.Error("CreateBooking: failed to read settings: %v", err)
			return nil, fmt.Errorf("%w: failed to read availability settings: %v", ErrInternal, err)
		}
	}

	// 6. Проверяем, что студия работает в указанную дату
	daySlots := domain.GenerateDaySlots(settings.EffectiveHours(date))
	if len(daySlots) == 0 {
		uc.logger.Warn("CreateBooking: studio is closed on %s", req.Date)
		return nil, ErrStudioClosed
	}

	record := domain.BookedRecord{
		Reference:       uuid.NewString(),
		Date:            req.Date,
		Time:            req.StartTime,
		DurationMinutes: durationMinutes,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		Services:        services,
		CreatedAt:       now,
	}

	// 7. Проверяем доступность и добавляем запись в сериализуемой транзакции,
	// чтобы конкурирующие бронирования не заняли один слот
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Читаем бронирования на дату, журнал блокируется до конца транзакции
		records, err := uc.bookingRepo.ListByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем, что визит помещается с выбранного времени
		if !isStartAvailable(daySlots, req.StartTime, durationMinutes, records) {
			uc.logger.Warn("CreateBooking: slot %s on %s is not available", req.StartTime, req.Date)
			return ErrSlotNotAvailable
		}

		// 7.3. Добавляем запись в журнал
		if err := uc.bookingRepo.Append(txCtx, record); err != nil {
			uc.logger.Error("CreateBooking: failed to append booking: %v", err)
			return fmt.Errorf("%w: failed to append booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking %s created for %s %s", record.Reference, req.Date, req.StartTime)

	return &Response{Booking: record}, nil
}

// resolveServices находит выбранные услуги в каталоге
func (uc *UseCase) resolveServices(ctx context.Context, serviceIDs []string) ([]domain.ServiceRef, error) {
	catalog, err := uc.catalogRepo.List(ctx)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCatalogNotFound) {
			catalog = nil
		} else {
			uc.logger.Error("CreateBooking: failed to load catalog: %v", err)
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
			uc.logger.Warn("CreateBooking: service id=%s not found", id)
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		refs = append(refs, svc.Ref())
	}

	return refs, nil
}
