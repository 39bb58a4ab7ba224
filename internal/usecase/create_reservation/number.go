package create_reservation

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// numberSuffixAlphabet алфавит суффикса без неоднозначных символов (0/O, 1/I)
const numberSuffixAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const numberSuffixLength = 4

// generateReservationNumber формирует человекочитаемый номер бронирования
// вида RSV-20250826-K3F7. Уникальность гарантирует ограничение в БД,
// при коллизии вызывающая сторона генерирует номер заново.
func generateReservationNumber(now time.Time) (string, error) {
	buf := make([]byte, numberSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reservation number suffix: %w", err)
	}

	suffix := make([]byte, numberSuffixLength)
	for i, b := range buf {
		suffix[i] = numberSuffixAlphabet[int(b)%len(numberSuffixAlphabet)]
	}

	return fmt.Sprintf("%s-%s-%s",
		domain.ReservationNumberPrefix, now.Format("20060102"), string(suffix)), nil
}
