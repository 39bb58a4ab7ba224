package guestregistry

// Guest профиль гостя из внешнего реестра.
// Сервис бронирования хранит только ссылку (guest_id);
// профиль запрашивается по необходимости.
type Guest struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IDNumber    string `json:"id_number"`
	Nationality string `json:"nationality"`
	IsVIP       bool   `json:"is_vip"`
	LoyaltyTier string `json:"loyalty_tier"`
}

// ErrorResponse модель ошибки от реестра гостей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
