package project_calendar

import (
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// maxWindowDays лимит окна календаря в днях
const maxWindowDays = 366

// Request модель запроса проекции календаря занятости
type Request struct {
	From       types.DateString // Начало окна (включительно)
	To         types.DateString // Конец окна (исключительно)
	RoomNumber *string          // Фильтр по конкретному номеру (опционально)
}

// SpanResponse полоса ночей в строке номера.
// Смещения полуоткрытые, в днях от начала окна
type SpanResponse struct {
	StartOffset   int    `json:"startOffset"`
	EndOffset     int    `json:"endOffset"`
	Nights        int    `json:"nights"`
	ReservationID *int64 `json:"reservationId,omitempty"` // nil — свободный промежуток
	Status        string `json:"status,omitempty"`
}

// RoomCalendar строка календаря: один номер, спаны покрывают окно целиком
type RoomCalendar struct {
	RoomID int64          `json:"roomId"`
	Number string         `json:"number"`
	Floor  int            `json:"floor"`
	Spans  []SpanResponse `json:"spans"`
}

// Response модель ответа проекции календаря
type Response struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Days  int             `json:"days"`
	Rooms []*RoomCalendar `json:"rooms"`
}
