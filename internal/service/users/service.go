package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	userRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/user"
	"github.com/herica-studio/StudioBookingService/internal/service/users/models"
)

// Service сервис для работы с профилем клиента
type Service struct {
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Register сохраняет профиль клиента, повторная регистрация перезаписывает
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Register: phone=%s", req.Phone)

	// 1. Валидация запроса
	profile := &domain.UserProfile{
		Name:      strings.TrimSpace(req.Name),
		BirthDate: strings.TrimSpace(req.BirthDate),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if err := validateProfile(profile); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем профиль
	if err := s.userRepo.Write(ctx, profile); err != nil {
		s.logger.Error("Register: failed to write profile: %v", err)
		return nil, fmt.Errorf("%w: failed to write profile: %v", ErrInternal, err)
	}

	s.logger.Info("Register: profile saved for %s", profile.Phone)

	return s.toResponse(profile), nil
}

// Get возвращает сохраненный профиль клиента
func (s *Service) Get(ctx context.Context) (*models.ProfileResponse, error) {
	profile, err := s.userRepo.Read(ctx)
	if err != nil {
		if errors.Is(err, userRepo.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: failed to read profile: %v", err)
		return nil, fmt.Errorf("%w: failed to read profile: %v", ErrInternal, err)
	}

	return s.toResponse(profile), nil
}

func (s *Service) toResponse(profile *domain.UserProfile) *models.ProfileResponse {
	return &models.ProfileResponse{
		Name:          profile.Name,
		BirthDate:     profile.BirthDate,
		Phone:         profile.Phone,
		BirthdayMonth: profile.IsBirthdayMonth(s.timeProvider.Now()),
	}
}

// validateProfile проверяет поля профиля
func validateProfile(profile *domain.UserProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if profile.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidProfile)
	}
	if profile.BirthDate != "" {
		if _, err := time.ParseInLocation(domain.DateFormat, profile.BirthDate, time.UTC); err != nil {
			return fmt.Errorf("%w: birth date %q is not YYYY-MM-DD", ErrInvalidProfile, profile.BirthDate)
		}
	}
	return nil
}
