package reports

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/herica-studio/StudioBookingService/internal/domain"
	bookingsModels "github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
	"github.com/herica-studio/StudioBookingService/internal/service/reports/models"
)

// Заголовки и формат отчета повторяют выгрузку из старой админки,
// чтобы сводные таблицы клиента продолжали работать
var csvHeaders = []string{"Data", "Hora", "Cliente", "Telefone", "Serviço", "Categoria", "Duração (min)", "Preço (R$)"}

const exportDateFormat = "02/01/2006"

// Service сервис отчетов по журналу бронирований
type Service struct {
	bookings BookingsLister
	logger   Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookings BookingsLister, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		logger:   logger,
	}
}

// Summary возвращает сводные показатели по отобранным записям
func (s *Service) Summary(ctx context.Context, filter *bookingsModels.Filter) (*models.SummaryResponse, error) {
	resp, err := s.bookings.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &models.SummaryResponse{Bookings: len(resp.Bookings)}
	phones := make(map[string]bool)
	for _, rec := range resp.Bookings {
		phones[rec.CustomerPhone] = true
		summary.ServicesBooked += len(rec.Services)
		summary.Revenue += rec.TotalPrice()
	}
	summary.Clients = len(phones)

	s.logger.Info("Summary: bookings=%d, revenue=%.2f, clients=%d",
		summary.Bookings, summary.Revenue, summary.Clients)

	return summary, nil
}

// ExportCSV собирает CSV отчет, одна строка на оказанную услугу
// Файл в UTF-8 с BOM, даты в формате dd/MM/yyyy, цены с запятой
func (s *Service) ExportCSV(ctx context.Context, filter *bookingsModels.Filter, now time.Time) (*models.ExportResponse, error) {
	resp, err := s.bookings.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("\ufeff")
	buf.WriteString(strings.Join(csvHeaders, ","))

	for _, rec := range resp.Bookings {
		for _, svc := range rec.Services {
			buf.WriteByte('\n')
			buf.WriteString(strings.Join([]string{
				formatExportDate(rec.Date),
				string(rec.Time),
				quoteField(rec.CustomerName),
				rec.CustomerPhone,
				quoteField(svc.Name),
				quoteField(svc.Category),
				strconv.Itoa(svc.DurationMinutes),
				quoteField(formatPrice(svc.Price)),
			}, ","))
		}
	}

	fileName := fmt.Sprintf("relatorio_herica_studio_%s.csv", now.Format(domain.DateFormat))

	s.logger.Info("ExportCSV: %d bookings exported to %s", len(resp.Bookings), fileName)

	return &models.ExportResponse{
		FileName: fileName,
		Content:  buf.Bytes(),
	}, nil
}

// formatExportDate переводит YYYY-MM-DD в dd/MM/yyyy,
// нечитаемая дата выводится как есть
func formatExportDate(date string) string {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, time.UTC)
	if err != nil {
		return date
	}
	return parsed.Format(exportDateFormat)
}

// quoteField экранирует значение для CSV с кавычками
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// formatPrice выводит цену с двумя знаками и десятичной запятой,
// значение обязательно экранируется кавычками при сборке строки
func formatPrice(price float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(price, 'f', 2, 64), ".", ",")
}
