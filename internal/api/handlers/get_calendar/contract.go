package get_calendar

import (
	"context"

	projectCalendarUC "github.com/m04kA/HMS-ReservationService/internal/usecase/project_calendar"
)

type ProjectCalendarUseCase interface {
	Execute(ctx context.Context, req *projectCalendarUC.Request) (*projectCalendarUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
