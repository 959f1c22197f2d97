package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	credentialsRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/adminauth"
)

// defaultPassword пароль администратора до первой смены
const defaultPassword = "senha123"

// Service сервис проверки и смены пароля администратора
type Service struct {
	credentialsRepo CredentialsRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(credentialsRepo CredentialsRepository, logger Logger) *Service {
	return &Service{
		credentialsRepo: credentialsRepo,
		logger:          logger,
	}
}

// Verify проверяет пароль администратора
// Пока пароль не менялся, действует пароль по умолчанию
func (s *Service) Verify(ctx context.Context, password string) error {
	hash, err := s.credentialsRepo.ReadHash(ctx)
	if err != nil {
		if errors.Is(err, credentialsRepo.ErrCredentialsNotFound) {
			if password == defaultPassword {
				return nil
			}
			s.logger.Warn("Verify: wrong default password attempt")
			return ErrWrongPassword
		}
		s.logger.Error("Verify: failed to read credentials: %v", err)
		return fmt.Errorf("%w: failed to read credentials: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn("Verify: wrong password attempt")
		return ErrWrongPassword
	}

	return nil
}

// ChangePassword меняет пароль администратора
// Текущий пароль проверяется перед сменой
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	if err := s.Verify(ctx, current); err != nil {
		return err
	}

	next = strings.TrimSpace(next)
	if next == "" {
		return fmt.Errorf("%w: password must not be empty", ErrInvalidPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: failed to hash password: %v", err)
		return fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	if err := s.credentialsRepo.WriteHash(ctx, string(hash)); err != nil {
		s.logger.Error("ChangePassword: failed to write credentials: %v", err)
		return fmt.Errorf("%w: failed to write credentials: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: admin password updated")

	return nil
}
