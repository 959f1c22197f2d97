package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	"github.com/herica-studio/StudioBookingService/internal/service/availability/models"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

// Service сервис для работы с настройками доступности
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Get возвращает текущие настройки доступности
// Отсутствующая или нечитаемая запись откатывается к настройкам по умолчанию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.availabilityRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) || errors.Is(err, availabilityRepo.ErrCorruptRecord) {
			s.logger.Warn("Get: settings unavailable, using defaults: %v", err)
			return models.FromDomain(domain.DefaultAvailabilitySettings()), nil
		}
		s.logger.Error("Get: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: failed to read settings: %v", ErrInternal, err)
	}

	return models.FromDomain(settings), nil
}

// Update проверяет и сохраняет настройки доступности целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: workDays=%v, hours=%s-%s, exceptions=%d",
		req.WorkDays, req.StartTime, req.EndTime, len(req.Exceptions))

	// 1. Валидация запроса
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем доменную модель, исключения нормализуются через SetException
	settings := &domain.AvailabilitySettings{
		WorkDays:   req.WorkDays,
		StartTime:  types.TimeString(req.StartTime),
		EndTime:    types.TimeString(req.EndTime),
		Exceptions: []domain.ScheduleException{},
	}
	for _, ex := range req.Exceptions {
		settings.SetException(ex)
	}

	// 3. Сохраняем
	if err := s.availabilityRepo.Write(ctx, settings); err != nil {
		s.logger.Error("Update: failed to write settings: %v", err)
		return nil, fmt.Errorf("%w: failed to write settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved")

	return models.FromDomain(settings), nil
}
