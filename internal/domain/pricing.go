package domain

// ReservationPricing результат расчёта стоимости бронирования.
// Вся арифметика целочисленная, в минорных единицах валюты:
// плавающая точка для денег недопустима.
type ReservationPricing struct {
	Subtotal    int64 // Σ (тариф × ночи − скидка + доп. услуги) по назначениям
	Tax         int64 // Налог от Subtotal по ставке в базисных пунктах
	GrandTotal  int64 // Subtotal + Tax
	TotalPaid   int64 // Сумма журнала платежей
	BalanceDue  int64 // max(0, GrandTotal − TotalPaid)
	IsFullyPaid bool  // Строго BalanceDue == 0, без допусков
}
