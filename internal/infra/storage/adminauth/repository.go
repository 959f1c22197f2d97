package adminauth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/herica-studio/StudioBookingService/pkg/dbmetrics"
	"github.com/herica-studio/StudioBookingService/pkg/psqlbuilder"
)

// recordKey стабильный ключ записи учетных данных администратора
const recordKey = "admin_credentials"

// credentialsRecord формат хранения учетных данных администратора
type credentialsRecord struct {
	PasswordHash string `json:"passwordHash"`
}

// Repository репозиторий учетных данных администратора
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных данных
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReadHash читает bcrypt хэш пароля администратора
// Возвращает ErrCredentialsNotFound, если запись отсутствует;
// в этом случае сервис откатывается к паролю по умолчанию
func (r *Repository) ReadHash(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("data").
		From("records").
		Where(squirrel.Eq{"key": recordKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: ReadHash - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialsNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: ReadHash - scan record: %v", ErrExecQuery, err)
	}

	var record credentialsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("%w: ReadHash - decode record: %v", ErrCorruptRecord, err)
	}
	if record.PasswordHash == "" {
		return "", fmt.Errorf("%w: ReadHash - empty password hash", ErrCorruptRecord)
	}

	return record.PasswordHash, nil
}

// WriteHash сохраняет bcrypt хэш пароля администратора
func (r *Repository) WriteHash(ctx context.Context, hash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(credentialsRecord{PasswordHash: hash})
	if err != nil {
		return fmt.Errorf("%w: WriteHash - marshal record: %v", ErrEncodeRecord, err)
	}

	query, args, err := psqlbuilder.Insert("records").
		Columns("key", "data").
		Values(recordKey, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: WriteHash - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: WriteHash - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
