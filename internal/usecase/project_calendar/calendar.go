package project_calendar

import (
	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// nightClaim претензия бронирования на одну ночь номера
type nightClaim struct {
	reservationID int64
	status        domain.ReservationStatus
}

// buildRoomSpans строит полосы занятости одного номера в окне [from, from+windowDays).
//
// Каждая ночь окна разыгрывается между пересекающими её удержаниями,
// затем последовательные ночи одного победителя (и свободные промежутки)
// склеиваются в полосы. Результат — точное разбиение окна: полосы не
// пересекаются, не оставляют дыр и в сумме покрывают все windowDays ночей.
//
// Два удержания на одну ночь одного номера — ошибка данных выше по потоку;
// проектор разрешает её детерминированно (beats), но фиксирует конфликт.
func buildRoomSpans(
	roomNumber string,
	windowDays int,
	from types.DateString,
	holds []*domain.RoomHold,
) ([]domain.CalendarSpan, []domain.CalendarConflict, error) {
	nights := make([]*nightClaim, windowDays)
	var conflicts []domain.CalendarConflict

	for _, h := range holds {
		start, err := from.DaysUntil(h.CheckInDate)
		if err != nil {
			return nil, nil, err
		}
		end, err := from.DaysUntil(h.CheckOutDate)
		if err != nil {
			return nil, nil, err
		}

		// Клиппинг к окну
		if start < 0 {
			start = 0
		}
		if end > windowDays {
			end = windowDays
		}

		claim := &nightClaim{reservationID: h.ReservationID, status: h.Status}

		for night := start; night < end; night++ {
			current := nights[night]
			if current == nil {
				nights[night] = claim
				continue
			}
			if current.reservationID == claim.reservationID {
				continue
			}

			winner, loser := current, claim
			if beats(claim, current) {
				winner, loser = claim, current
			}
			nights[night] = winner
			conflicts = append(conflicts, domain.CalendarConflict{
				RoomNumber: roomNumber,
				DateOffset: night,
				WinnerID:   winner.reservationID,
				LoserID:    loser.reservationID,
			})
		}
	}

	return mergeNights(nights), conflicts, nil
}

// beats возвращает true, когда претензия a выигрывает ночь у претензии b.
// Заселённый гость всегда выигрывает у подтверждённой брони; при равных
// статусах побеждает бронирование с меньшим ID. Отношение тотально,
// поэтому результат не зависит от порядка обхода удержаний.
func beats(a, b *nightClaim) bool {
	if a.status != b.status {
		return a.status == domain.StatusCheckedIn
	}
	return a.reservationID < b.reservationID
}

// mergeNights склеивает последовательные ночи одного бронирования
// (и свободные ночи) в полосы
func mergeNights(nights []*nightClaim) []domain.CalendarSpan {
	spans := make([]domain.CalendarSpan, 0)

	start := 0
	for i := 1; i <= len(nights); i++ {
		if i < len(nights) && sameClaim(nights[i], nights[start]) {
			continue
		}

		span := domain.CalendarSpan{StartOffset: start, EndOffset: i}
		if c := nights[start]; c != nil {
			id := c.reservationID
			span.ReservationID = &id
			span.Status = c.status
		}
		spans = append(spans, span)
		start = i
	}

	return spans
}

// sameClaim проверяет, что две ночи принадлежат одному бронированию
// либо обе свободны
func sameClaim(a, b *nightClaim) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.reservationID == b.reservationID
}

// groupHoldsByRoom раскладывает удержания по номерам
func groupHoldsByRoom(holds []*domain.RoomHold) map[int64][]*domain.RoomHold {
	grouped := make(map[int64][]*domain.RoomHold)
	for _, h := range holds {
		grouped[h.RoomID] = append(grouped[h.RoomID], h)
	}
	return grouped
}
