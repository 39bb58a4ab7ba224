package pricing

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStay возвращается при некорректном интервале проживания
	ErrInvalidStay = errors.New("invalid stay interval")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing service: internal error")
)
