package create_reservation

import (
	createReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	GuestID         int64   `json:"guestId"`
	CheckInDate     string  `json:"checkInDate"`  // "2025-08-26"
	CheckOutDate    string  `json:"checkOutDate"` // "2025-08-29"
	Adults          int     `json:"adults"`
	Children        int     `json:"children,omitempty"`
	BookingSource   string  `json:"bookingSource"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	RoomIDs         []int64 `json:"roomIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case.
// Формат дат валидируется ниже по стеку
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservationUC.Request {
	return &createReservationUC.Request{
		GuestID:         r.GuestID,
		CheckIn:         types.DateString(r.CheckInDate),
		CheckOut:        types.DateString(r.CheckOutDate),
		Adults:          r.Adults,
		Children:        r.Children,
		BookingSource:   r.BookingSource,
		SpecialRequests: r.SpecialRequests,
		RoomIDs:         r.RoomIDs,
	}
}
