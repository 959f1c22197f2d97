package catalog

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

// recordKey стабильный ключ записи каталога услуг
const recordKey = "service_catalog"

// Repository репозиторий каталога услуг
// Каталог хранится единым JSONB массивом под стабильным ключом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги каталога
// Возвращает ErrCatalogNotFound, если запись еще не создавалась
func (r *Repository) List(ctx context.Context) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("data").
		From("records").
		Where(squirrel.Eq{"key": recordKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCatalogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: List - scan record: %v", ErrExecQuery, err)
	}

	var services []domain.Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("%w: List - decode record: %v", ErrCorruptRecord, err)
	}

	return services, nil
}

// ReplaceAll перезаписывает каталог услуг целиком
func (r *Repository) ReplaceAll(ctx context.Context, services []domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Пустой каталог сохраняем как пустой массив, а не null
	if services == nil {
		services = []domain.Service{}
	}

	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - marshal services: %v", ErrEncodeRecord, err)
	}

	query, args, err := psqlbuilder.Insert("records").
		Columns("key", "data").
		Values(recordKey, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
