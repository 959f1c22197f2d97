package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	bookingsModels "github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

type fakeBookings struct {
	records []domain.BookedRecord
}

func (f *fakeBookings) ListFiltered(_ context.Context, _ *bookingsModels.Filter) (*bookingsModels.ListResponse, error) {
	return &bookingsModels.ListResponse{Bookings: f.records}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testRecords() []domain.BookedRecord {
	return []domain.BookedRecord{
		{
			Reference: "b1", Date: "2025-09-15", Time: "10:00",
			CustomerName: `Ana "Aninha" Silva`, CustomerPhone: "111",
			Services: []domain.ServiceRef{
				{ID: "corte_1", Category: "Cabelo", Name: "Corte Feminino", Price: 80, DurationMinutes: 50},
				{ID: "manicure_1", Category: "Unhas", Name: "Manicure", Price: 35.5, DurationMinutes: 40},
			},
		},
		{
			Reference: "b2", Date: "2025-09-20", Time: "14:00",
			CustomerName: "Ana Silva", CustomerPhone: "111",
			Services: []domain.ServiceRef{
				{ID: "corte_1", Category: "Cabelo", Name: "Corte Feminino", Price: 80, DurationMinutes: 50},
			},
		},
		{
			Reference: "b3", Date: "2025-09-22", Time: "09:00",
			CustomerName: "Bia", CustomerPhone: "222",
			Services: []domain.ServiceRef{
				{ID: "manicure_1", Category: "Unhas", Name: "Manicure", Price: 35.5, DurationMinutes: 40},
			},
		},
	}
}

func TestService_Summary(t *testing.T) {
	svc := NewService(&fakeBookings{records: testRecords()}, noopLogger{})

	summary, err := svc.Summary(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Bookings)
	assert.Equal(t, 4, summary.ServicesBooked)
	assert.Equal(t, 2, summary.Clients)
	assert.InDelta(t, 231.0, summary.Revenue, 0.001)
}

func TestService_Summary_Empty(t *testing.T) {
	svc := NewService(&fakeBookings{}, noopLogger{})

	summary, err := svc.Summary(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, summary.Bookings)
	assert.Zero(t, summary.Revenue)
	assert.Zero(t, summary.Clients)
}

func TestService_ExportCSV(t *testing.T) {
	svc := NewService(&fakeBookings{records: testRecords()}, noopLogger{})
	now := time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC)

	resp, err := svc.ExportCSV(context.Background(), nil, now)

	require.NoError(t, err)
	assert.Equal(t, "relatorio_herica_studio_2025-09-30.csv", resp.FileName)

	content := string(resp.Content)
	require.True(t, strings.HasPrefix(content, "\ufeff"))

	lines := strings.Split(strings.TrimPrefix(content, "\ufeff"), "\n")
	// Заголовок плюс строка на каждую оказанную услугу
	require.Len(t, lines, 5)
	assert.Equal(t, "Data,Hora,Cliente,Telefone,Serviço,Categoria,Duração (min),Preço (R$)", lines[0])
	assert.Equal(t, `15/09/2025,10:00,"Ana ""Aninha"" Silva",111,"Corte Feminino","Cabelo",50,"80,00"`, lines[1])
	assert.Contains(t, lines[2], `"35,50"`)
}

func TestService_ExportCSV_Empty(t *testing.T) {
	svc := NewService(&fakeBookings{}, noopLogger{})
	now := time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC)

	resp, err := svc.ExportCSV(context.Background(), nil, now)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimPrefix(string(resp.Content), "\ufeff"), "\n")
	require.Len(t, lines, 1)
}
