package project_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("project_calendar: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном окне календаря
	ErrInvalidDateRange = errors.New("project_calendar: invalid date range")

	// ErrWindowTooLarge возвращается, когда окно календаря превышает лимит
	ErrWindowTooLarge = errors.New("project_calendar: window is too large")

	// ErrRoomNotFound возвращается, когда запрошенный номер не найден
	ErrRoomNotFound = errors.New("project_calendar: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("project_calendar: internal error")
)
