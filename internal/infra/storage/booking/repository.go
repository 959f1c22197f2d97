package booking

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

// recordKey стабильный ключ записи журнала бронирований
const recordKey = "booking_ledger"

// Repository репозиторий журнала бронирований
// Журнал хранится единым JSONB массивом под стабильным ключом,
// добавление записи выполняется перезаписью всего массива внутри
// сериализуемой транзакции
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все записи журнала
// Отсутствие записи журнала означает пустой журнал
func (r *Repository) List(ctx context.Context) ([]domain.BookedRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("data").
		From("records").
		Where(squirrel.Eq{"key": recordKey})

	// Внутри транзакции блокируем запись журнала до конца транзакции,
	// чтобы конкурирующие добавления не потеряли друг друга
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.BookedRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: List - scan record: %v", ErrExecQuery, err)
	}

	var records []domain.BookedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: List - decode record: %v", ErrCorruptRecord, err)
	}

	return records, nil
}

// ListByDate возвращает записи журнала на указанную дату
func (r *Repository) ListByDate(ctx context.Context, date string) ([]domain.BookedRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.BookedRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date == date {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

// ListByPhone возвращает записи журнала с указанным телефоном клиента
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]domain.BookedRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.BookedRecord, 0, len(records))
	for _, rec := range records {
		if rec.CustomerPhone == phone {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

// Append добавляет запись в журнал бронирований
// Должен вызываться внутри сериализуемой транзакции после проверки
// доступности слота
func (r *Repository) Append(ctx context.Context, record domain.BookedRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: Append - marshal records: %v", ErrEncodeRecord, err)
	}

	query, args, err := psqlbuilder.Insert("records").
		Columns("key", "data").
		Values(recordKey, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
