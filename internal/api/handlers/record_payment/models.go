package record_payment

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/service/payments/models"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount    int64      `json:"amount"` // В минорных единицах
	Method    string     `json:"method"`
	Reference string     `json:"reference,omitempty"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RecordPaymentRequest) ToServiceRequest() *models.RecordPaymentRequest {
	return &models.RecordPaymentRequest{
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		PaidAt:    r.PaidAt,
	}
}
