package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	userRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/user"
	"github.com/herica-studio/StudioBookingService/pkg/types"
)

type fakeAvailabilityRepo struct {
	settings *domain.AvailabilitySettings
}

func (f *fakeAvailabilityRepo) Read(_ context.Context) (*domain.AvailabilitySettings, error) {
	return f.settings, nil
}

type fakeCatalogRepo struct {
	services []domain.Service
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]domain.Service, error) {
	return f.services, nil
}

type fakeBookingRepo struct {
	records  []domain.BookedRecord
	appended []domain.BookedRecord
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date string) ([]domain.BookedRecord, error) {
	filtered := make([]domain.BookedRecord, 0, len(f.records))
	for _, rec := range f.records {
		if rec.Date == date {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (f *fakeBookingRepo) Append(_ context.Context, record domain.BookedRecord) error {
	f.records = append(f.records, record)
	f.appended = append(f.appended, record)
	return nil
}

type fakeUserRepo struct {
	profile *domain.UserProfile
	err     error
}

func (f *fakeUserRepo) Read(_ context.Context) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{Name: "Ana Silva", BirthDate: "1990-09-15", Phone: "11999990000"}
}

func newTestUseCase(book *fakeBookingRepo, user *fakeUserRepo) *UseCase {
	uc := NewUseCase(
		&fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()},
		&fakeCatalogRepo{services: testCatalog()},
		book,
		user,
		passthroughTxManager{},
		domain.DefaultHorizonDays,
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_CreatesBooking(t *testing.T) {
	book := &fakeBookingRepo{}
	uc := newTestUseCase(book, &fakeUserRepo{profile: testProfile()})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "10:00",
		ServiceIDs: []string{"corte_1", "manicure_1"},
	})

	require.NoError(t, err)
	require.Len(t, book.appended, 1)

	booking := resp.Booking
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, "2025-09-01", booking.Date)
	assert.Equal(t, types.TimeString("10:00"), booking.Time)
	// 50 + 40 плюс два буфера по 10 минут
	assert.Equal(t, 110, booking.DurationMinutes)
	assert.Equal(t, "Ana Silva", booking.CustomerName)
	assert.Equal(t, "11999990000", booking.CustomerPhone)
	require.Len(t, booking.Services, 2)
	assert.Equal(t, float64(115), booking.TotalPrice())
}

func TestUseCase_Execute_SlotAlreadyTaken(t *testing.T) {
	book := &fakeBookingRepo{records: []domain.BookedRecord{
		{Date: "2025-09-01", Time: "10:00", DurationMinutes: 60},
	}}
	uc := newTestUseCase(book, &fakeUserRepo{profile: testProfile()})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "10:30",
		ServiceIDs: []string{"corte_1"},
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, book.appended)
}

func TestUseCase_Execute_VisitOverrunsClosingTime(t *testing.T) {
	book := &fakeBookingRepo{}
	uc := newTestUseCase(book, &fakeUserRepo{profile: testProfile()})

	// 110 минут с 16:00 закончились бы в 17:50
	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "16:00",
		ServiceIDs: []string{"corte_1", "manicure_1"},
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_StudioClosed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{profile: testProfile()})

	// Воскресенье по умолчанию нерабочий день
	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-07",
		StartTime:  "10:00",
		ServiceIDs: []string{"corte_1"},
	})

	assert.ErrorIs(t, err, ErrStudioClosed)
}

func TestUseCase_Execute_StartOutsideGrid(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{profile: testProfile()})

	// 10:15 не лежит на сетке с шагом 30 минут
	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "10:15",
		ServiceIDs: []string{"corte_1"},
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_InvalidStartTime(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{profile: testProfile()})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "25:00",
		ServiceIDs: []string{"corte_1"},
	})

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUseCase_Execute_UserNotRegistered(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{err: userRepo.ErrProfileNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "10:00",
		ServiceIDs: []string{"corte_1"},
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUseCase_Execute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{profile: testProfile()})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "10:00",
		ServiceIDs: []string{"missing"},
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUserRepo{profile: testProfile()})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-08-31",
		StartTime:  "10:00",
		ServiceIDs: []string{"corte_1"},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{
		Date:       "2026-01-01",
		StartTime:  "10:00",
		ServiceIDs: []string{"corte_1"},
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestUseCase_Execute_BackToBackBookings(t *testing.T) {
	book := &fakeBookingRepo{records: []domain.BookedRecord{
		{Date: "2025-09-01", Time: "10:00", DurationMinutes: 60},
	}}
	uc := newTestUseCase(book, &fakeUserRepo{profile: testProfile()})

	// Границы полуоткрытые: визит с 11:00 сразу после бронирования до 11:00
	resp, err := uc.Execute(context.Background(), &Request{
		Date:       "2025-09-01",
		StartTime:  "11:00",
		ServiceIDs: []string{"corte_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.Booking.Time)
}
