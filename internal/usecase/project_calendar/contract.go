package project_calendar

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// RoomRepository интерфейс репозитория номерного фонда
type RoomRepository interface {
	ListActive(ctx context.Context, roomNumber *string) ([]*domain.Room, error)
}

// AssignmentRepository интерфейс репозитория назначений номеров
type AssignmentRepository interface {
	ListHolds(ctx context.Context, filter domain.HoldFilter) ([]*domain.RoomHold, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
