package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidStatus возвращается при недопустимом операционном статусе
	ErrInvalidStatus = errors.New("invalid room status")

	// ErrRoomOccupied возвращается при попытке перевести занятый номер
	// в maintenance/cleaning без явного флага force
	ErrRoomOccupied = errors.New("room has a checked-in guest, force flag required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)
