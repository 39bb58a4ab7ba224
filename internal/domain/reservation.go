package domain

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Reservation бронирование проживания.
// Гость занимает ночи полуоткрытого интервала [CheckInDate, CheckOutDate):
// дата выезда в интервал не входит, в этот день номер уже может быть
// заселён другим бронированием.
type Reservation struct {
	ID                int64
	ReservationNumber string // Стабильный внешний ключ для гостя и кассы (RSV-...)
	GuestID           int64  // Ссылка на гостя во внешнем реестре
	CheckInDate       types.DateString
	CheckOutDate      types.DateString
	Adults            int
	Children          int
	Status            ReservationStatus
	BookingSource     string  // Канал бронирования: walk_in, phone, ota, website
	SpecialRequests   *string

	CancellationReason *string
	CancelledBy        *string // Идентификатор сотрудника, оформившего отмену
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights возвращает число ночей бронирования
func (r *Reservation) Nights() (int, error) {
	return r.CheckInDate.DaysUntil(r.CheckOutDate)
}

// Guests возвращает общее число гостей
func (r *Reservation) Guests() int {
	return r.Adults + r.Children
}

// HoldsRoom возвращает true, если бронирование удерживает свои номера
func (r *Reservation) HoldsRoom() bool {
	return r.Status.IsHolding()
}

// CanBeConfirmed возвращает true, если бронирование можно подтвердить
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCheckedIn возвращает true, если по бронированию можно заселить гостя
func (r *Reservation) CanBeCheckedIn() bool {
	return r.Status == StatusConfirmed
}

// CanBeCheckedOut возвращает true, если по бронированию можно выселить гостя
func (r *Reservation) CanBeCheckedOut() bool {
	return r.Status == StatusCheckedIn
}

// CanBeCancelled возвращает true, если бронирование можно отменить.
// После заселения отмена невозможна ни при каких условиях.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal возвращает true, если бронирование в конечном статусе
func (r *Reservation) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// ReservationWindowFilter фильтр бронирований по окну дат для календаря
type ReservationWindowFilter struct {
	From     types.DateString // Начало окна (включительно)
	To       types.DateString // Конец окна (исключительно)
	Statuses []ReservationStatus
	RoomID   *int64 // Фильтр по конкретному номеру (опционально)
}
