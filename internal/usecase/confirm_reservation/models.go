package confirm_reservation

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	ReservationID int64
	Actor         string // Идентификатор сотрудника для аудита
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	Reservation *models.ReservationResponse `json:"reservation"`
}
