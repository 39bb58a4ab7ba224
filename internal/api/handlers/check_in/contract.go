package check_in

import (
	"context"

	checkInUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_in"
)

type CheckInUseCase interface {
	Execute(ctx context.Context, req *checkInUC.Request) (*checkInUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
