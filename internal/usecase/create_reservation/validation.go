package create_reservation

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult(s) required", ErrInvalidInput, domain.MinAdults)
	}
	if req.Children < 0 {
		return fmt.Errorf("%w: children must be non-negative", ErrInvalidInput)
	}

	if !slices.Contains(domain.BookingSources, req.BookingSource) {
		return fmt.Errorf("%w: unknown booking source %q", ErrInvalidInput, req.BookingSource)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests exceeds %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	for _, roomID := range req.RoomIDs {
		if roomID <= 0 {
			return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
		}
	}
	if hasDuplicates(req.RoomIDs) {
		return fmt.Errorf("%w: duplicate roomID in selection", ErrInvalidInput)
	}

	return validateStayInterval(req.CheckIn, req.CheckOut, now)
}

// validateStayInterval проверяет интервал проживания [checkIn, checkOut)
func validateStayInterval(checkIn, checkOut types.DateString, now time.Time) error {
	if checkIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}
	if checkOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}
	if err := checkIn.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkIn format: %v", ErrInvalidInput, err)
	}
	if err := checkOut.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOut format: %v", ErrInvalidInput, err)
	}

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

// validateCapacity проверяет, что суммарная вместимость выбранных номеров
// покрывает число гостей
func validateCapacity(totalCapacity, guests int) error {
	if totalCapacity < guests {
		return fmt.Errorf("%w: capacity %d, guests %d", ErrInsufficientCapacity, totalCapacity, guests)
	}
	return nil
}

// hasDuplicates проверяет список ID на повторы
func hasDuplicates(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
