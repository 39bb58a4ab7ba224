package create_reservation

import (
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestID         int64            // ID гостя во внешнем реестре
	CheckIn         types.DateString // Дата заезда
	CheckOut        types.DateString // Дата выезда (не входит в проживание)
	Adults          int
	Children        int
	BookingSource   string  // Канал бронирования: walk_in, phone, ota, website
	SpecialRequests *string // Пожелания гостя (опционально)
	RoomIDs         []int64 // Предвыбранные номера (опционально, пустой список — подбор при подтверждении)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *models.ReservationResponse `json:"reservation"`

	// GuestDegraded true, когда реестр гостей был недоступен и бронирование
	// создано без профиля гостя
	GuestDegraded bool `json:"guestDegraded,omitempty"`
}
