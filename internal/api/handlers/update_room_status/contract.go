package update_room_status

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

type RoomService interface {
	SetOperationalStatus(ctx context.Context, roomID int64, req *models.SetStatusRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
