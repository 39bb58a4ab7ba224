package check_in

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Request модель запроса на заселение гостя
type Request struct {
	ReservationID int64
	Actor         string // Идентификатор сотрудника для аудита
}

// Response модель ответа с заселённым бронированием
type Response struct {
	Reservation *models.ReservationResponse `json:"reservation"`
}
