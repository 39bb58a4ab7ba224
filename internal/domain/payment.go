package domain

import "time"

// Payment запись в журнале платежей бронирования.
// Журнал только пополняется: платёжный процессор (внешний сервис)
// присылает подтверждённые платежи, калькулятор стоимости их суммирует.
type Payment struct {
	ID            int64
	ReservationID int64
	Amount        int64 // В минорных единицах валюты
	Method        string
	Reference     string // Идентификатор транзакции на стороне процессора
	PaidAt        time.Time
	CreatedAt     time.Time
}
