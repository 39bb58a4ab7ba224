package domain

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// RoomAssignment назначение физического номера бронированию.
// Тариф за ночь снимается в момент назначения и далее не меняется,
// какой бы ни стала базовая цена типа номера.
//
// Назначение само по себе номер не удерживает: удержание определяется
// статусом родительского бронирования (HoldingStatuses). Поэтому при
// отмене бронирования назначения сохраняются для аудита, а удержание
// снимается автоматически сменой статуса.
type RoomAssignment struct {
	ID             int64
	ReservationID  int64
	RoomID         int64
	Rate           int64 // За ночь, в минорных единицах
	DiscountAmount int64 // На всё проживание, в минорных единицах
	ExtraCharges   int64 // На всё проживание, в минорных единицах
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RoomHold удержание номера: назначение вместе с датами и статусом
// родительского бронирования. Используется движком доступности и
// календарём — это развёрнутое представление индекса занятости.
type RoomHold struct {
	AssignmentID  int64
	ReservationID int64
	RoomID        int64
	Status        ReservationStatus
	CheckInDate   types.DateString
	CheckOutDate  types.DateString
}

// Overlaps проверяет пересечение удержания с полуоткрытым интервалом [checkIn, checkOut).
// Граничные случаи пересечением не считаются: выезд в день чужого заезда допустим.
func (h *RoomHold) Overlaps(checkIn, checkOut types.DateString) bool {
	return h.CheckInDate.IsBefore(checkOut) && h.CheckOutDate.IsAfter(checkIn)
}

// HoldFilter фильтр удержаний для проверки доступности
type HoldFilter struct {
	CheckIn  types.DateString
	CheckOut types.DateString
	Statuses []ReservationStatus // Какие статусы считаются удерживающими
	RoomIDs  []int64             // Пустой список — все номера
}
