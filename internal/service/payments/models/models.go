package models

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// RecordPaymentRequest запрос на регистрацию платежа
type RecordPaymentRequest struct {
	Amount    int64
	Method    string
	Reference string
	PaidAt    *time.Time // nil = момент регистрации
}

// PaymentResponse зарегистрированный платёж
type PaymentResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}

// FromDomainPayment конвертирует domain.Payment в PaymentResponse
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Method:        p.Method,
		Reference:     p.Reference,
		PaidAt:        p.PaidAt,
	}
}

// FromDomainPayments конвертирует список платежей
func FromDomainPayments(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, FromDomainPayment(p))
	}
	return result
}
