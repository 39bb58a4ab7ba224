package payments

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationClosed платежи по завершённому или отменённому бронированию не принимаются
	ErrReservationClosed = errors.New("reservation is closed for payments")

	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
