package confirm_reservation

import (
	"context"

	confirmReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/confirm_reservation"
)

type ConfirmReservationUseCase interface {
	Execute(ctx context.Context, req *confirmReservationUC.Request) (*confirmReservationUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
