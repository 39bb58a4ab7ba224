package confirm_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("confirm_reservation: reservation not found")

	// ErrInvalidTransition возвращается, когда бронирование не в статусе pending
	ErrInvalidTransition = errors.New("confirm_reservation: reservation cannot be confirmed from its current status")

	// ErrRoomUnavailable возвращается, когда ни один номер не может быть
	// закреплён за бронированием на его даты
	ErrRoomUnavailable = errors.New("confirm_reservation: no room available for the reservation dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reservation: internal error")
)
