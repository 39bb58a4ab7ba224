package cancel_reservation

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(actor string) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		Reason: r.Reason,
		Actor:  actor,
	}
}
