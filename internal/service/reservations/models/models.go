package models

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"` // Идентификатор сотрудника для аудита
}

// Response модели

// AssignmentResponse назначение номера в составе бронирования
type AssignmentResponse struct {
	ID             int64 `json:"id"`
	RoomID         int64 `json:"roomId"`
	Rate           int64 `json:"rate"`
	DiscountAmount int64 `json:"discountAmount"`
	ExtraCharges   int64 `json:"extraCharges"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                int64   `json:"id"`
	ReservationNumber string  `json:"reservationNumber"`
	GuestID           int64   `json:"guestId"`
	CheckInDate       string  `json:"checkInDate"`  // "2025-08-26"
	CheckOutDate      string  `json:"checkOutDate"` // "2025-08-29"
	Nights            int     `json:"nights"`
	Adults            int     `json:"adults"`
	Children          int     `json:"children"`
	Status            string  `json:"status"`
	BookingSource     string  `json:"bookingSource"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`

	Assignments []AssignmentResponse `json:"assignments"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, assignments []*domain.RoomAssignment) *ReservationResponse {
	if r == nil {
		return nil
	}

	nights, err := r.Nights()
	if err != nil {
		nights = 0
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		ReservationNumber:  r.ReservationNumber,
		GuestID:            r.GuestID,
		CheckInDate:        r.CheckInDate.String(),
		CheckOutDate:       r.CheckOutDate.String(),
		Nights:             nights,
		Adults:             r.Adults,
		Children:           r.Children,
		Status:             string(r.Status),
		BookingSource:      r.BookingSource,
		SpecialRequests:    r.SpecialRequests,
		Assignments:        make([]AssignmentResponse, 0, len(assignments)),
		CancellationReason: r.CancellationReason,
		CancelledBy:        r.CancelledBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			ID:             a.ID,
			RoomID:         a.RoomID,
			Rate:           a.Rate,
			DiscountAmount: a.DiscountAmount,
			ExtraCharges:   a.ExtraCharges,
		})
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
