package check_out

import (
	"context"

	checkOutUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_out"
)

type CheckOutUseCase interface {
	Execute(ctx context.Context, req *checkOutUC.Request) (*checkOutUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
