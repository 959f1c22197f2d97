package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/herica-studio/StudioBookingService/internal/service/bookings/models"
)

// ParseBookingsFilter разбирает общие параметры отчетных запросов:
// year=2025, months=1,2,3, serviceIds=a,b
func ParseBookingsFilter(query url.Values) (*models.Filter, error) {
	filter := &models.Filter{}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year <= 0 {
			return nil, fmt.Errorf("invalid year %q", raw)
		}
		filter.Year = year
	}

	if raw := query.Get("months"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			month, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid month %q", part)
			}
			filter.Months = append(filter.Months, month)
		}
	}

	if raw := query.Get("serviceIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				filter.ServiceIDs = append(filter.ServiceIDs, trimmed)
			}
		}
	}

	return filter, nil
}
