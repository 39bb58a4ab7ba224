package find_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_available_rooms: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном интервале проживания
	ErrInvalidDateRange = errors.New("find_available_rooms: invalid date range")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("find_available_rooms: check-in date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_rooms: internal error")
)
