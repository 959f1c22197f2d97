package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
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

func newTestUseCase(repo *fakeAvailabilityRepo, horizonDays int) *UseCase {
	uc := NewUseCase(repo, horizonDays, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_DefaultHorizonSkipsSundays(t *testing.T) {
	repo := &fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	// 60 дней с 2025-09-01 содержат 8 воскресений
	assert.Len(t, resp.Dates, 52)
	assert.Equal(t, "2025-09-01", resp.Dates[0])
	assert.NotContains(t, resp.Dates, "2025-09-07")
	assert.IsIncreasing(t, resp.Dates)
}

func TestExecute_DaysLimitsLookahead(t *testing.T) {
	repo := &fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{Days: 7})
	require.NoError(t, err)

	// Неделя с понедельника: шесть рабочих дней, воскресенье выпадает
	assert.Len(t, resp.Dates, 6)
	assert.Equal(t, "2025-09-01", resp.Dates[0])
	assert.Equal(t, "2025-09-06", resp.Dates[5])
}

func TestExecute_DaysAboveHorizonIsCapped(t *testing.T) {
	repo := &fakeAvailabilityRepo{settings: domain.DefaultAvailabilitySettings()}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{Days: 365})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, 52)
}

func TestExecute_ClosedExceptionRemovesDate(t *testing.T) {
	settings := domain.DefaultAvailabilitySettings()
	settings.SetException(domain.ScheduleException{Date: "2025-09-02", IsWorking: false})
	repo := &fakeAvailabilityRepo{settings: settings}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{Days: 7})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, 5)
	assert.NotContains(t, resp.Dates, "2025-09-02")
}

func TestExecute_WorkingExceptionOpensSunday(t *testing.T) {
	settings := domain.DefaultAvailabilitySettings()
	settings.SetException(domain.ScheduleException{
		Date:      "2025-09-07",
		IsWorking: true,
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	repo := &fakeAvailabilityRepo{settings: settings}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{Days: 7})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, 7)
	assert.Contains(t, resp.Dates, "2025-09-07")
}

func TestExecute_MissingSettingsFallsBackToDefaults(t *testing.T) {
	repo := &fakeAvailabilityRepo{err: availabilityRepo.ErrSettingsNotFound}
	uc := newTestUseCase(repo, 60)

	resp, err := uc.Execute(context.Background(), &Request{Days: 7})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, 6)
}
