package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	catalogRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/catalog"
	"github.com/herica-studio/StudioBookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг
type Service struct {
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все услуги каталога
// Отсутствие записи каталога означает пустой каталог
func (s *Service) List(ctx context.Context) (*models.ListResponse, error) {
	services, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ListResponse{Services: services}, nil
}

// Create добавляет услугу в каталог
// Идентификатор собирается из категории и unix времени в миллисекундах
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: category=%s, name=%s", req.Category, req.Name)

	// 1. Валидация запроса
	if err := validateServiceData(req.Category, req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем текущий каталог
	services, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Добавляем услугу и сохраняем каталог целиком
	service := domain.Service{
		ID:              domain.NewServiceID(req.Category, s.timeProvider.Now()),
		Category:        strings.TrimSpace(req.Category),
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Photo:           req.Photo,
	}
	services = append(services, service)

	if err := s.catalogRepo.ReplaceAll(ctx, services); err != nil {
		s.logger.Error("Create: failed to save catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to save catalog: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service %s created", service.ID)

	return &models.ServiceResponse{Service: service}, nil
}

// Update изменяет услугу каталога, идентификатор не меняется
func (s *Service) Update(ctx context.Context, serviceID string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: service=%s", serviceID)

	// 1. Валидация запроса
	if err := validateServiceData(req.Category, req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем каталог и находим услугу
	services, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range services {
		if services[i].ID == serviceID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.logger.Warn("Update: service id=%s not found", serviceID)
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	// 3. Заменяем поля и сохраняем каталог целиком
	services[idx] = domain.Service{
		ID:              serviceID,
		Category:        strings.TrimSpace(req.Category),
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Photo:           req.Photo,
	}

	if err := s.catalogRepo.ReplaceAll(ctx, services); err != nil {
		s.logger.Error("Update: failed to save catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to save catalog: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service %s updated", serviceID)

	return &models.ServiceResponse{Service: services[idx]}, nil
}

// Delete удаляет услугу из каталога
// Существующие бронирования хранят копии услуг и не затрагиваются
func (s *Service) Delete(ctx context.Context, serviceID string) error {
	s.logger.Info("Delete: service=%s", serviceID)

	services, err := s.list(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		if svc.ID != serviceID {
			filtered = append(filtered, svc)
		}
	}
	if len(filtered) == len(services) {
		s.logger.Warn("Delete: service id=%s not found", serviceID)
		return fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	if err := s.catalogRepo.ReplaceAll(ctx, filtered); err != nil {
		s.logger.Error("Delete: failed to save catalog: %v", err)
		return fmt.Errorf("%w: failed to save catalog: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service %s deleted", serviceID)

	return nil
}

func (s *Service) list(ctx context.Context) ([]domain.Service, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCatalogNotFound) {
			return []domain.Service{}, nil
		}
		s.logger.Error("list: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}
	return services, nil
}

// validateServiceData проверяет поля услуги
func validateServiceData(category, name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidService)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidService)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidService)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidService)
	}
	return nil
}
