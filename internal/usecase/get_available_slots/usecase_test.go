package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	settings *domain.AvailabilitySettings
	err      error
}

func (f *fakeAvailabilityRepo) Read(_ context.Context) (*domain.AvailabilitySettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

type fakeCatalogRepo struct {
	services []domain.Service
	err      error
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.services, nil
}

type fakeBookingRepo struct {
	records []domain.BookedRecord
	err     error
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date string) ([]domain.BookedRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	filtered := make([]domain.BookedRecord, 0, len(f.records))
	for _, rec := range f.records {
		if rec.Date == date {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Понедельник внутри горизонта планирования
var testNow = time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

func testCatalog() []domain.Service {
	return []domain.Service{
		{ID: "corte_1", Category: "Cabelo", Name: "Corte Feminino", Price: 80, DurationMinutes: 50},
		{ID: "manicure_1", Category: "Unhas", Name: "Manicure", Price: 35, DurationMinutes: 40},
	}
}

func newTestUseCase(av *fakeAvailabilityRepo, cat *fakeCatalogRepo, book *fakeBookingRepo) *UseCase {
	uc := NewUseCase(av, cat, book, domain.DefaultHorizonDays, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_SingleServiceWithBuffer(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{"corte_1"},
	})

	require.NoError(t, err)
	// 50 минут услуги плюс 10 минут буфера
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("16:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("16:30"))
}

func TestUseCase_Execute_MultipleServicesSumDurations(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{"corte_1", "manicure_1"},
	})

	require.NoError(t, err)
	// 50 + 40 плюс два буфера по 10 минут
	assert.Equal(t, 110, resp.DurationMinutes)
}

func TestUseCase_Execute_ExistingBookingBlocksSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{records: []domain.BookedRecord{
			{Date: "2025-09-01", Time: "10:00", DurationMinutes: 60},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{"corte_1"},
	})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestUseCase_Execute_ClosedDateReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	// Воскресенье по умолчанию нерабочий день
	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-07",
		ServiceIDs: []string{"corte_1"},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestUseCase_Execute_MissingSettingsFallsBackToDefaults(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{err: availabilityRepo.ErrSettingsNotFound},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{"corte_1"},
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestUseCase_Execute_UnknownServiceID(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{"missing"},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_NoServicesSelected(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		ServiceIDs: []string{},
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	uc := newTestUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		&fakeBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-08-31",
		ServiceIDs: []string{"corte_1"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		Date:       "2026-01-01",
		ServiceIDs: []string{"corte_1"},
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	_, err = uc.Execute(context.Background(), &Request{
		Date:       "01/09/2025",
		ServiceIDs: []string{"corte_1"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
