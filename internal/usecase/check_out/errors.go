package check_out

import (
	"errors"
	"fmt"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("check_out: reservation not found")

	// ErrInvalidTransition возвращается, когда бронирование не в статусе checked_in
	ErrInvalidTransition = errors.New("check_out: reservation cannot be checked out from its current status")

	// ErrPaymentRequired возвращается, когда по бронированию остался долг.
	// Выселение с ненулевым балансом запрещено
	ErrPaymentRequired = errors.New("check_out: payment required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_out: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)

// PaymentRequiredError ошибка выселения с долгом: несёт номер бронирования
// и остаток к оплате для ответа кассе. Сопоставляется с ErrPaymentRequired
// через errors.Is.
type PaymentRequiredError struct {
	ReservationNumber string
	BalanceDue        int64
}

// Error реализует интерфейс error
func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("check_out: payment required for %s, balance due %d", e.ReservationNumber, e.BalanceDue)
}

// Is сопоставляет ошибку с сентинелом ErrPaymentRequired
func (e *PaymentRequiredError) Is(target error) bool {
	return target == ErrPaymentRequired
}
