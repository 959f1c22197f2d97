package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	availabilityRepo "github.com/herica-studio/StudioBookingService/internal/infra/storage/availability"
	"github.com/herica-studio/StudioBookingService/internal/service/availability/models"
)

type fakeRepo struct {
	settings *domain.AvailabilitySettings
	readErr  error
	written  *domain.AvailabilitySettings
}

func (f *fakeRepo) Read(_ context.Context) (*domain.AvailabilitySettings, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.settings, nil
}

func (f *fakeRepo) Write(_ context.Context, settings *domain.AvailabilitySettings) error {
	f.written = settings
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		WorkDays:  []int{1, 2, 3, 4, 5},
		StartTime: "10:00",
		EndTime:   "18:00",
		Exceptions: []domain.ScheduleException{
			{Date: "2025-09-07", IsWorking: true, StartTime: "12:00", EndTime: "14:00"},
			{Date: "2025-09-03", IsWorking: false},
		},
	}
}

func TestService_Get_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{readErr: availabilityRepo.ErrSettingsNotFound}, noopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WorkDays)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
	assert.Empty(t, resp.Exceptions)
}

func TestService_Update_SavesNormalizedSettings(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Update(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, repo.written)
	// Исключения отсортированы по дате
	require.Len(t, resp.Exceptions, 2)
	assert.Equal(t, "2025-09-03", resp.Exceptions[0].Date)
	assert.Equal(t, "2025-09-07", resp.Exceptions[1].Date)
}

func TestService_Update_RejectsBadWorkDays(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	req := validRequest()
	req.WorkDays = []int{1, 7}
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWorkDays)

	req = validRequest()
	req.WorkDays = nil
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWorkDays)

	req = validRequest()
	req.WorkDays = []int{1, 1}
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWorkDays)
}

func TestService_Update_RejectsBadTimeRange(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	req := validRequest()
	req.StartTime = "18:00"
	req.EndTime = "10:00"
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = validRequest()
	req.StartTime = "9:00"
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestService_Update_RejectsBadException(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	req := validRequest()
	req.Exceptions = []domain.ScheduleException{{Date: "07/09/2025", IsWorking: false}}
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidException)

	req = validRequest()
	req.Exceptions = []domain.ScheduleException{
		{Date: "2025-09-07", IsWorking: true, StartTime: "14:00", EndTime: "12:00"},
	}
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidException)
}

func TestService_Update_ClosedExceptionSkipsTimeCheck(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	req := validRequest()
	req.Exceptions = []domain.ScheduleException{{Date: "2025-09-07", IsWorking: false}}

	_, err := svc.Update(context.Background(), req)

	require.NoError(t, err)
}
