package domain

import "time"

// UserProfile профиль клиента студии
type UserProfile struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Phone     string `json:"phone"`
}

// IsBirthdayMonth возвращает true, если текущий месяц - месяц рождения клиента
// Используется для поздравления при входе в запись
func (u *UserProfile) IsBirthdayMonth(now time.Time) bool {
	birth, err := time.Parse(DateFormat, u.BirthDate)
	if err != nil {
		return false
	}
	return birth.Month() == now.Month()
}
