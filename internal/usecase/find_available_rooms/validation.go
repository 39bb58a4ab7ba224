package find_available_rooms

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}
	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}
	if err := req.CheckIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}
	if err := req.CheckOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

	if req.Guests < domain.MinAdults {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	return validateStayInterval(req.CheckIn, req.CheckOut, now)
}

// validateStayInterval проверяет интервал проживания [checkIn, checkOut).
// Минимум одна ночь; заезд сегодняшним днём допустим, вчерашним — нет.
func validateStayInterval(checkIn, checkOut types.DateString, now time.Time) error {
	if !checkIn.IsBefore(checkOut) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidDateRange)
	}

	nights, err := checkIn.DaysUntil(checkOut)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	if nights < domain.MinNights {
		return fmt.Errorf("%w: stay must be at least %d night(s)", ErrInvalidDateRange, domain.MinNights)
	}

	today := types.NewDateString(now)
	if checkIn.IsBefore(today) {
		return ErrDateInPast
	}

	return nil
}
