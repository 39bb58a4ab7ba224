package payments

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Record(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Payment, error)
	TotalPaid(ctx context.Context, reservationID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
