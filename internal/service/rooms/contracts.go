package rooms

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetTypeByID(ctx context.Context, id int64) (*domain.RoomType, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
