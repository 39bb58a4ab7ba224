package check_out

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Request модель запроса на выселение гостя
type Request struct {
	ReservationID int64
	Actor         string // Идентификатор сотрудника для аудита
}

// PricingSummary итоговая стоимость проживания на момент выселения
type PricingSummary struct {
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	GrandTotal int64 `json:"grandTotal"`
	TotalPaid  int64 `json:"totalPaid"`
}

// Response модель ответа с выселенным бронированием
type Response struct {
	Reservation *models.ReservationResponse `json:"reservation"`
	Pricing     PricingSummary              `json:"pricing"`
}
