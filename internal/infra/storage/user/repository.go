package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/herica-studio/StudioBookingService/pkg/psqlbuilder"
)

// recordKey стабильный ключ записи профиля клиента
const recordKey = "user_profile"

// Repository репозиторий профиля клиента
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профиля
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Read читает профиль текущего клиента
// Возвращает ErrProfileNotFound, если профиль еще не зарегистрирован
func (r *Repository) Read(ctx context.Context) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("data").
		From("records").
		Where(squirrel.Eq{"key": recordKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Read - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - scan record: %v", ErrExecQuery, err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: Read - decode record: %v", ErrCorruptRecord, err)
	}

	return &profile, nil
}

// Write сохраняет профиль клиента (повторная регистрация перезаписывает)
func (r *Repository) Write(ctx context.Context, profile *domain.UserProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: Write - marshal profile: %v", ErrEncodeRecord, err)
	}

	query, args, err := psqlbuilder.Insert("records").
		Columns("key", "data").
		Values(recordKey, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Write - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Write - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
