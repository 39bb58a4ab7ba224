package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCannotCancel возвращается при отмене из недопустимого статуса
	// (после заселения или из конечного статуса)
	ErrCannotCancel = errors.New("reservation cannot be cancelled in its current status")

	// ErrCancellationWindowClosed возвращается, когда отмена запрещена
	// политикой: до заезда осталось меньше cutoff-окна
	ErrCancellationWindowClosed = errors.New("cancellation window is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
