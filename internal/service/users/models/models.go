package models

// RegisterRequest запрос на регистрацию профиля клиента
type RegisterRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Phone     string `json:"phone"`
}

// ProfileResponse ответ с профилем клиента
type ProfileResponse struct {
	Name          string `json:"name"`
	BirthDate     string `json:"birthDate"`
	Phone         string `json:"phone"`
	BirthdayMonth bool   `json:"birthdayMonth"` // Месяц рождения совпадает с текущим
}
