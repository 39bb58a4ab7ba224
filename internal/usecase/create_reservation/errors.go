package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном интервале проживания
	ErrInvalidDateRange = errors.New("create_reservation: invalid date range")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_reservation: check-in date is in the past")

	// ErrGuestNotFound возвращается, когда гость не найден в реестре
	ErrGuestNotFound = errors.New("create_reservation: guest not found")

	// ErrRoomNotFound возвращается, когда предвыбранный номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomNotBookable возвращается, когда предвыбранный номер неактивен
	// или операционно непригоден для бронирования
	ErrRoomNotBookable = errors.New("create_reservation: room is not bookable")

	// ErrRoomUnavailable возвращается, когда предвыбранный номер удерживается
	// другим бронированием на пересекающиеся ночи
	ErrRoomUnavailable = errors.New("create_reservation: room is unavailable for the requested dates")

	// ErrInsufficientCapacity возвращается, когда вместимость выбранных номеров
	// меньше числа гостей
	ErrInsufficientCapacity = errors.New("create_reservation: insufficient room capacity for guest count")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
