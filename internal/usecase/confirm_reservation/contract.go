package confirm_reservation

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// AssignmentRepository интерфейс репозитория назначений номеров
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.RoomAssignment) (*domain.RoomAssignment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.RoomAssignment, error)
	ListHolds(ctx context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error)
}

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	ListBookable(ctx context.Context, minOccupancy int) ([]*domain.BookableRoom, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
