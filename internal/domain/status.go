package domain

import "errors"

var (
	// ErrUnknownReservationStatus возвращается при неизвестном статусе бронирования
	ErrUnknownReservationStatus = errors.New("domain: unknown reservation status")

	// ErrUnknownRoomStatus возвращается при неизвестном операционном статусе номера
	ErrUnknownRoomStatus = errors.New("domain: unknown room status")
)

// ReservationStatus статус бронирования.
// Единственное каноническое представление статусов в системе:
// все слои (БД, API, календарь) используют именно эти значения,
// никакой нормализации регистра по месту использования.
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ValidReservationStatuses все допустимые статусы бронирования
var ValidReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// HoldingStatuses статусы, в которых бронирование удерживает номер:
// номер занят для всех пересекающихся по ночам запросов доступности
var HoldingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusCheckedIn,
}

// ParseReservationStatus валидирует строку и возвращает канонический статус
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	for _, valid := range ValidReservationStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrUnknownReservationStatus
}

// IsHolding возвращает true, если бронирование в этом статусе удерживает номер
func (s ReservationStatus) IsHolding() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// IsTerminal возвращает true для конечных статусов
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// RoomStatus операционный статус номера
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusCleaning    RoomStatus = "cleaning"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusOutOfOrder  RoomStatus = "out_of_order"
	RoomStatusBlocked     RoomStatus = "blocked"
)

// ValidRoomStatuses все допустимые операционные статусы номера
var ValidRoomStatuses = []RoomStatus{
	RoomStatusAvailable,
	RoomStatusOccupied,
	RoomStatusCleaning,
	RoomStatusMaintenance,
	RoomStatusOutOfOrder,
	RoomStatusBlocked,
}

// ParseRoomStatus валидирует строку и возвращает канонический статус номера
func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	for _, valid := range ValidRoomStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrUnknownRoomStatus
}

// IsBookable возвращает true, если номер в этом статусе попадает в пул доступных
func (s RoomStatus) IsBookable() bool {
	return s == RoomStatusAvailable
}
