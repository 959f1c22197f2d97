package availability

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

// recordKey стабильный ключ записи настроек доступности
const recordKey = "availability_settings"

// Repository репозиторий настроек доступности
// Настройки хранятся единой JSONB записью под стабильным ключом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Read читает настройки доступности
// Возвращает ErrSettingsNotFound, если запись отсутствует, и
// ErrCorruptRecord, если запись не разбирается; решение об откате к
// значениям по умолчанию принимает вызывающая сторона
func (r *Repository) Read(ctx context.Context) (*domain.AvailabilitySettings, error) {
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
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - scan record: %v", ErrExecQuery, err)
	}

	var settings domain.AvailabilitySettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: Read - decode record: %v", ErrCorruptRecord, err)
	}

	// Обратная совместимость: отсутствующий список исключений считается пустым
	if settings.Exceptions == nil {
		settings.Exceptions = []domain.ScheduleException{}
	}

	return &settings, nil
}

// Write сохраняет настройки доступности целиком (последняя запись побеждает)
func (r *Repository) Write(ctx context.Context, settings *domain.AvailabilitySettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: Write - marshal settings: %v", ErrEncodeRecord, err)
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
