package find_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	findAvailableRoomsUC "github.com/m04kA/HMS-ReservationService/internal/usecase/find_available_rooms"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

const (
	msgInvalidCheckIn  = "некорректная дата заезда"
	msgInvalidCheckOut = "некорректная дата выезда"
	msgInvalidGuests   = "некорректное число гостей"
	msgInvalidRange    = "некорректный интервал проживания"
	msgDateInPast      = "дата заезда в прошлом"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-rooms?check_in=2025-08-26&check_out=2025-08-29&guests=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkIn, err := types.NewDateStringFromString(query.Get("check_in"))
	if err != nil {
		h.logger.Warn("GET /available-rooms - Invalid check_in: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckIn)
		return
	}

	checkOut, err := types.NewDateStringFromString(query.Get("check_out"))
	if err != nil {
		h.logger.Warn("GET /available-rooms - Invalid check_out: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckOut)
		return
	}

	// guests опционален, по умолчанию один гость
	guests := 1
	if raw := query.Get("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-rooms - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
	}

	resp, err := h.useCase.Execute(r.Context(), &findAvailableRoomsUC.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRoomsUC.ErrDateInPast):
			h.logger.Warn("GET /available-rooms - Check-in in past: check_in=%s", checkIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, findAvailableRoomsUC.ErrInvalidDateRange),
			errors.Is(err, findAvailableRoomsUC.ErrInvalidInput):
			h.logger.Warn("GET /available-rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /available-rooms - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-rooms - Found %d rooms for [%s, %s)", len(resp.Rooms), checkIn, checkOut)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
