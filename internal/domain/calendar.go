package domain

// CalendarSpan непрерывная полоса ночей одного номера в окне календаря.
// Смещения полуоткрытые и отсчитываются от начала окна в днях:
// span [0, 3) занимает первые три ячейки строки номера.
// ReservationID == nil означает свободный промежуток.
type CalendarSpan struct {
	StartOffset   int
	EndOffset     int
	ReservationID *int64
	Status        ReservationStatus // Пустой для свободных промежутков
}

// Nights возвращает длину полосы в ночах
func (s CalendarSpan) Nights() int {
	return s.EndOffset - s.StartOffset
}

// IsVacant возвращает true для свободного промежутка
func (s CalendarSpan) IsVacant() bool {
	return s.ReservationID == nil
}

// CalendarConflict зафиксированный конфликт занятости: две брони
// претендуют на одну ночь одного номера. Ошибка данных выше по потоку;
// проектор разрешает её детерминированно, но обязан сообщить.
type CalendarConflict struct {
	RoomNumber string
	DateOffset int
	WinnerID   int64
	LoserID    int64
}
