package check_out

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	checkOutUC "github.com/m04kA/HMS-ReservationService/internal/usecase/check_out"
)

const (
	msgInvalidID         = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "выселение возможно только по заселённому бронированию"
	msgPaymentRequired   = "по бронированию остался непогашенный долг"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor := middleware.StaffID(r.Context())

	resp, err := h.useCase.Execute(r.Context(), &checkOutUC.Request{
		ReservationID: reservationID,
		Actor:         actor,
	})
	if err != nil {
		// Ошибка долга несёт номер бронирования и остаток к оплате
		var paymentErr *checkOutUC.PaymentRequiredError
		if errors.As(err, &paymentErr) {
			h.logger.Warn("PATCH /reservations/{id}/check-out - Payment required: reservation_id=%d, balance_due=%d",
				reservationID, paymentErr.BalanceDue)
			handlers.RespondPaymentRequired(w, msgPaymentRequired,
				paymentErr.ReservationNumber, paymentErr.BalanceDue)
			return
		}

		switch {
		case errors.Is(err, checkOutUC.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkOutUC.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Invalid transition: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, checkOutUC.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("PATCH /reservations/{id}/check-out - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/check-out - Checked out: reservation_id=%d, actor=%s, grand_total=%d",
		reservationID, actor, resp.Pricing.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
