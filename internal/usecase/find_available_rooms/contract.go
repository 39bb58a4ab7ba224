package find_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	ListBookable(ctx context.Context, minOccupancy int) ([]*domain.BookableRoom, error)
}

// AssignmentRepository интерфейс репозитория назначений номеров
type AssignmentRepository interface {
	ListHolds(ctx context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error)
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
