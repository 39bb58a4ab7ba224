package check_in

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("check_in: reservation not found")

	// ErrInvalidTransition возвращается, когда бронирование не в статусе confirmed
	ErrInvalidTransition = errors.New("check_in: reservation cannot be checked in from its current status")

	// ErrTooEarly возвращается при попытке заселения раньше даты заезда,
	// когда ранний заезд запрещён конфигурацией
	ErrTooEarly = errors.New("check_in: check-in date has not arrived yet")

	// ErrNoRoomsAssigned возвращается, когда у бронирования нет назначений.
	// Подтверждённое бронирование всегда имеет хотя бы одно — это ошибка данных
	ErrNoRoomsAssigned = errors.New("check_in: reservation has no room assignments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
