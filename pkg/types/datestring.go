package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("types: invalid date string format, expected YYYY-MM-DD")

	// ErrScanDate возвращается, когда значение из БД не удалось привести к дате
	ErrScanDate = errors.New("types: unsupported source type for DateString")
)

// DateString календарная дата без времени в формате "YYYY-MM-DD".
// Используется для дат заезда и выезда: бронирование оперирует ночами,
// а не моментами времени, поэтому time.Time с таймзоной здесь только мешает.
//
// Строки в ISO-формате упорядочены лексикографически так же, как даты,
// поэтому сравнения выполняются без парсинга.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка является корректной датой
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero возвращает true для пустой (незаполненной) даты
func (d DateString) IsZero() bool {
	return d == ""
}

// String возвращает дату в формате "YYYY-MM-DD"
func (d DateString) String() string {
	return string(d)
}

// Time парсит дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// IsBefore возвращает true, если дата строго раньше other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если дата строго позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// Equal возвращает true для одинаковых дат
func (d DateString) Equal(other DateString) bool {
	return string(d) == string(other)
}

// AddDays возвращает дату, сдвинутую на days дней (days может быть отрицательным)
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// DaysUntil возвращает количество дней от d до other.
// Для d < other результат положительный.
func (d DateString) DaysUntil(other DateString) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// Scan реализует sql.Scanner: postgres DATE приходит как time.Time
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		parsed, err := NewDateStringFromString(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := NewDateStringFromString(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrScanDate, src)
	}
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}
