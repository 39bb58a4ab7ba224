package get_reservation

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID = "некорректный идентификатор бронирования"
	msgNotFound  = "бронирование не найдено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
// Принимает как числовой ID, так и человекочитаемый номер (RSV-...)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["reservationId"]

	var (
		res interface{}
		err error
	)

	if strings.HasPrefix(idStr, domain.ReservationNumberPrefix) {
		res, err = h.service.GetByNumber(r.Context(), idStr)
	} else {
		var id int64
		id, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		res, err = h.service.GetByID(r.Context(), id)
	}

	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: id=%s", idStr)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: id=%s, error=%v", idStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, res)
}
