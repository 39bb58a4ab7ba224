package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	checkInUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_in"
)

const (
	msgInvalidID         = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "заселение возможно только по подтверждённому бронированию"
	msgTooEarly          = "дата заезда ещё не наступила"
	msgNoRoomsAssigned   = "у бронирования нет назначенных номеров"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/check-in - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor := middleware.StaffID(r.Context())

	resp, err := h.useCase.Execute(r.Context(), &checkInUC.Request{
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkInUC.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkInUC.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, checkInUC.ErrTooEarly):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Too early: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgTooEarly)

		case errors.Is(err, checkInUC.ErrNoRoomsAssigned):
			h.logger.Error("PATCH /reservations/{id}/check-in - No rooms assigned: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNoRoomsAssigned)

		case errors.Is(err, checkInUC.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("PATCH /reservations/{id}/check-in - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/check-in - Checked in: reservation_id=%d, actor=%s",
		reservationID, actor)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
