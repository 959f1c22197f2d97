package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	"github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

type fakeRepo struct {
	records []domain.BookedRecord
}

func (f *fakeRepo) List(_ context.Context) ([]domain.BookedRecord, error) {
	return f.records, nil
}

func (f *fakeRepo) ListByPhone(_ context.Context, phone string) ([]domain.BookedRecord, error) {
	filtered := make([]domain.BookedRecord, 0, len(f.records))
	for _, rec := range f.records {
		if rec.CustomerPhone == phone {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testRecords() []domain.BookedRecord {
	return []domain.BookedRecord{
		{
			Reference: "b1", Date: "2025-09-15", Time: "10:00",
			CustomerName: "Ana", CustomerPhone: "111",
			Services: []domain.ServiceRef{{ID: "corte_1", Price: 80}},
		},
		{
			Reference: "b2", Date: "2025-09-15", Time: "09:00",
			CustomerName: "Bia", CustomerPhone: "222",
			Services: []domain.ServiceRef{{ID: "manicure_1", Price: 35}},
		},
		{
			Reference: "b3", Date: "2025-10-02", Time: "11:00",
			CustomerName: "Ana", CustomerPhone: "111",
			Services: []domain.ServiceRef{{ID: "corte_1", Price: 80}, {ID: "manicure_1", Price: 35}},
		},
		{
			Reference: "b4", Date: "2024-12-20", Time: "14:00",
			CustomerName: "Clara", CustomerPhone: "333",
			Services: []domain.ServiceRef{{ID: "corte_1", Price: 80}},
		},
	}
}

func refs(records []domain.BookedRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Reference
	}
	return out
}

func TestService_ListByPhone_SortedByVisit(t *testing.T) {
	svc := NewService(&fakeRepo{records: testRecords()}, noopLogger{})

	resp, err := svc.ListByPhone(context.Background(), "111")

	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b3"}, refs(resp.Bookings))
}

func TestService_ListByPhone_RequiresPhone(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	_, err := svc.ListByPhone(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_ListFiltered_NoFilterReturnsAllSorted(t *testing.T) {
	svc := NewService(&fakeRepo{records: testRecords()}, noopLogger{})

	resp, err := svc.ListFiltered(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"b4", "b2", "b1", "b3"}, refs(resp.Bookings))
}

func TestService_ListFiltered_ByYear(t *testing.T) {
	svc := NewService(&fakeRepo{records: testRecords()}, noopLogger{})

	resp, err := svc.ListFiltered(context.Background(), &models.Filter{Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, []string{"b4"}, refs(resp.Bookings))
}

func TestService_ListFiltered_ByMonths(t *testing.T) {
	svc := NewService(&fakeRepo{records: testRecords()}, noopLogger{})

	resp, err := svc.ListFiltered(context.Background(), &models.Filter{Year: 2025, Months: []int{10}})

	require.NoError(t, err)
	assert.Equal(t, []string{"b3"}, refs(resp.Bookings))
}

func TestService_ListFiltered_ByServiceIDs(t *testing.T) {
	svc := NewService(&fakeRepo{records: testRecords()}, noopLogger{})

	resp, err := svc.ListFiltered(context.Background(), &models.Filter{ServiceIDs: []string{"manicure_1"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b3"}, refs(resp.Bookings))
}

func TestService_ListFiltered_BadMonth(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	_, err := svc.ListFiltered(context.Background(), &models.Filter{Months: []int{13}})

	assert.ErrorIs(t, err, ErrInvalidFilter)
}
