package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	createReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные данные бронирования"
	msgDateInPast           = "дата заезда в прошлом"
	msgGuestNotFound        = "гость не найден в реестре"
	msgRoomNotFound         = "выбранный номер не найден"
	msgRoomNotBookable      = "выбранный номер недоступен для бронирования"
	msgRoomUnavailable      = "номер занят на выбранные даты"
	msgInsufficientCapacity = "вместимость выбранных номеров меньше числа гостей"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservationUC.ErrGuestNotFound):
			h.logger.Warn("POST /reservations - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createReservationUC.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: rooms=%v", req.RoomIDs)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservationUC.ErrRoomNotBookable):
			h.logger.Warn("POST /reservations - Room not bookable: rooms=%v", req.RoomIDs)
			handlers.RespondConflict(w, msgRoomNotBookable)

		case errors.Is(err, createReservationUC.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations - Room unavailable: rooms=%v, dates=[%s, %s)",
				req.RoomIDs, req.CheckInDate, req.CheckOutDate)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createReservationUC.ErrInsufficientCapacity):
			h.logger.Warn("POST /reservations - Insufficient capacity: rooms=%v, guests=%d",
				req.RoomIDs, req.Adults+req.Children)
			handlers.RespondBadRequest(w, msgInsufficientCapacity)

		case errors.Is(err, createReservationUC.ErrDateInPast):
			h.logger.Warn("POST /reservations - Check-in in past: check_in=%s", req.CheckInDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservationUC.ErrInvalidDateRange),
			errors.Is(err, createReservationUC.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: number=%s, guest_id=%d",
		resp.Reservation.ReservationNumber, req.GuestID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
