package find_available_rooms

import (
	"context"

	findAvailableRoomsUC "github.com/m04kA/HMS-ReservationService/internal/usecase/find_available_rooms"
)

type FindAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *findAvailableRoomsUC.Request) (*findAvailableRoomsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
