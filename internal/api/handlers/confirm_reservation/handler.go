package confirm_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	confirmReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/confirm_reservation"
)

const (
	msgInvalidID         = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "бронирование не может быть подтверждено из текущего статуса"
	msgRoomUnavailable   = "нет свободных номеров на даты бронирования"
)

type Handler struct {
	useCase ConfirmReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor := middleware.StaffID(r.Context())

	resp, err := h.useCase.Execute(r.Context(), &confirmReservationUC.Request{
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmReservationUC.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/confirm - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmReservationUC.ErrInvalidTransition):
			h.logger.Warn("POST /reservations/{id}/confirm - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, confirmReservationUC.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations/{id}/confirm - No room available: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, confirmReservationUC.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/confirm - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("POST /reservations/{id}/confirm - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/confirm - Confirmed: reservation_id=%d, actor=%s",
		reservationID, actor)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
