package get_available_dates

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []string `json:"dates"`
}
