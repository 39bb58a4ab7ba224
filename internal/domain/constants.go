package domain

// Default configuration values
const (
	// DefaultTaxRateBasisPoints ставка налога по умолчанию: 1100 б.п. = 11% НДС
	DefaultTaxRateBasisPoints = 1100

	DefaultCancellationCutoffHours = 0 // 0 = отмена возможна до самого заезда
)

// Business validation constants
const (
	MinAdults = 1
	MinNights = 1

	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500

	// BasisPointsDivisor знаменатель ставки в базисных пунктах (10000 б.п. = 100%)
	BasisPointsDivisor = 10000
)

// ReservationNumberPrefix префикс человекочитаемого номера бронирования
const ReservationNumberPrefix = "RSV"

// BookingSources допустимые каналы бронирования
var BookingSources = []string{"walk_in", "phone", "ota", "website"}

// PaymentMethods допустимые способы оплаты
var PaymentMethods = []string{"cash", "card", "bank_transfer", "ota_collect"}
