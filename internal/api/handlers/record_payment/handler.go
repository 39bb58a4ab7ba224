package record_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/service/payments"
)

const (
	msgInvalidID          = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgReservationClosed  = "платежи по этому бронированию не принимаются"
	msgInvalidPayment     = "некорректные данные платежа"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payment, err := h.service.Record(r.Context(), reservationID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payments - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrReservationClosed):
			h.logger.Warn("POST /reservations/{id}/payments - Reservation closed: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgReservationClosed)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/payments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		default:
			h.logger.Error("POST /reservations/{id}/payments - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payments - Payment recorded: reservation_id=%d, payment_id=%d, amount=%d",
		reservationID, payment.ID, payment.Amount)
	handlers.RespondJSON(w, http.StatusCreated, payment)
}

// HandleList GET /api/v1/reservations/{reservationId}/payments
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id}/payments - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	list, err := h.service.List(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/payments - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{id}/payments - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
