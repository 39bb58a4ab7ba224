package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/integrations/guestregistry"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// AssignmentRepository интерфейс репозитория назначений номеров
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.RoomAssignment) (*domain.RoomAssignment, error)
	ListHolds(ctx context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error)
}

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetTypeByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// GuestRegistryClient интерфейс клиента внешнего реестра гостей
type GuestRegistryClient interface {
	GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*guestregistry.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
