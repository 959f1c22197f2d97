package availability

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда запись настроек отсутствует
	ErrSettingsNotFound = errors.New("availability.repository: settings not found")

	// ErrCorruptRecord возвращается, когда сохраненная запись не разбирается
	ErrCorruptRecord = errors.New("availability.repository: corrupt settings record")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrEncodeRecord возвращается при ошибке сериализации настроек
	ErrEncodeRecord = errors.New("availability.repository: failed to encode settings")
)
