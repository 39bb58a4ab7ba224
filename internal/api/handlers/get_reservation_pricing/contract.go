package get_reservation_pricing

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

type PricingService interface {
	QuoteByReservationID(ctx context.Context, reservationID int64) (*domain.ReservationPricing, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
