package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	projectCalendarUC "github.com/m04kA/HMS-ReservationService/internal/usecase/project_calendar"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

const (
	msgInvalidFrom    = "некорректная дата начала окна"
	msgInvalidTo      = "некорректная дата конца окна"
	msgInvalidWindow  = "некорректное окно календаря"
	msgWindowTooLarge = "окно календаря слишком большое"
	msgRoomNotFound   = "номер не найден"
)

type Handler struct {
	useCase ProjectCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ProjectCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?from=2025-08-01&to=2025-09-01&room=101
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := types.NewDateStringFromString(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := types.NewDateStringFromString(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	var roomNumber *string
	if raw := query.Get("room"); raw != "" {
		roomNumber = &raw
	}

	resp, err := h.useCase.Execute(r.Context(), &projectCalendarUC.Request{
		From:       from,
		To:         to,
		RoomNumber: roomNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, projectCalendarUC.ErrRoomNotFound):
			h.logger.Warn("GET /calendar - Room not found: room=%v", roomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, projectCalendarUC.ErrWindowTooLarge):
			h.logger.Warn("GET /calendar - Window too large: [%s, %s)", from, to)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, projectCalendarUC.ErrInvalidDateRange),
			errors.Is(err, projectCalendarUC.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /calendar - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
