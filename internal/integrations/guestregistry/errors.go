package guestregistry

import "errors"

var (
	// ErrGuestNotFound возвращается, когда гость не найден в реестре
	ErrGuestNotFound = errors.New("guest not found in registry")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("guestregistry client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("guestregistry client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что реестр гостей недоступен: бронирование продолжается
	// без профиля гостя, профиль подтянется при следующем обращении
	ErrServiceDegraded = errors.New("guestregistry unavailable: graceful degradation applied")
)
