package pricing

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// AssignmentRepository интерфейс репозитория назначений номеров
type AssignmentRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.RoomAssignment, error)
}

// PaymentRepository интерфейс журнала платежей
type PaymentRepository interface {
	TotalPaid(ctx context.Context, reservationID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
