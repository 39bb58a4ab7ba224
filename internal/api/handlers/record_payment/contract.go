package record_payment

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/service/payments/models"
)

type PaymentService interface {
	Record(ctx context.Context, reservationID int64, req *models.RecordPaymentRequest) (*models.PaymentResponse, error)
	List(ctx context.Context, reservationID int64) ([]*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
